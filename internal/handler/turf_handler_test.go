package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/turfbook/turf-booking-service/internal/dto"
	"github.com/turfbook/turf-booking-service/internal/models"
	"github.com/turfbook/turf-booking-service/internal/service"
)

// --- Mock TurfService ---

type mockTurfService struct {
	createFn func(ctx context.Context, turf *models.Turf) error
	getFn    func(ctx context.Context, id string) (*models.Turf, error)
	listFn   func(ctx context.Context) ([]models.Turf, error)
	updateFn func(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockTurfService) CreateTurf(ctx context.Context, turf *models.Turf) error {
	return m.createFn(ctx, turf)
}
func (m *mockTurfService) GetTurf(ctx context.Context, id string) (*models.Turf, error) {
	return m.getFn(ctx, id)
}
func (m *mockTurfService) ListTurfs(ctx context.Context) ([]models.Turf, error) {
	return m.listFn(ctx)
}
func (m *mockTurfService) UpdateTurf(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error) {
	return m.updateFn(ctx, id, req)
}
func (m *mockTurfService) DeleteTurf(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- Tests ---

func TestCreateTurf_Handler_Success(t *testing.T) {
	svc := &mockTurfService{
		createFn: func(ctx context.Context, turf *models.Turf) error {
			turf.ID = "turf-1"
			turf.CreatedAt = time.Now()
			return nil
		},
	}

	e := echo.New()
	body := `{"name":"Greenfield","location":"Sector 5","pricePerHour":1000,"capacity":14}`
	req := httptest.NewRequest(http.MethodPost, "/turfs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTurfHandler(svc)
	err := h.CreateTurf(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TurfResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "turf-1", resp.ID)
	assert.Equal(t, "Greenfield", resp.Name)
	assert.Equal(t, float64(1000), resp.PricePerHour)
	assert.Equal(t, 14, resp.Capacity)
}

func TestCreateTurf_Handler_MissingFields(t *testing.T) {
	e := echo.New()
	body := `{"name":"Greenfield"}`
	req := httptest.NewRequest(http.MethodPost, "/turfs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTurfHandler(nil)
	err := h.CreateTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Contains(t, he.Internal.Error(), "location")
	assert.Contains(t, he.Internal.Error(), "pricePerHour")
	assert.Contains(t, he.Internal.Error(), "capacity")
}

func TestCreateTurf_Handler_ZeroCapacity(t *testing.T) {
	e := echo.New()
	body := `{"name":"Greenfield","location":"Sector 5","pricePerHour":1000,"capacity":0}`
	req := httptest.NewRequest(http.MethodPost, "/turfs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTurfHandler(nil)
	err := h.CreateTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateTurf_Handler_NegativePrice(t *testing.T) {
	e := echo.New()
	body := `{"name":"Greenfield","location":"Sector 5","pricePerHour":-5,"capacity":10}`
	req := httptest.NewRequest(http.MethodPost, "/turfs", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTurfHandler(nil)
	err := h.CreateTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestGetTurf_Handler_Success(t *testing.T) {
	svc := &mockTurfService{
		getFn: func(ctx context.Context, id string) (*models.Turf, error) {
			return &models.Turf{ID: id, Name: "Greenfield", Location: "Sector 5", PricePerHour: 1000, Capacity: 14}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/turfs/turf-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("turf-1")

	h := NewTurfHandler(svc)
	err := h.GetTurf(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTurf_Handler_NotFound(t *testing.T) {
	svc := &mockTurfService{
		getFn: func(ctx context.Context, id string) (*models.Turf, error) {
			return nil, service.ErrTurfNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/turfs/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewTurfHandler(svc)
	err := h.GetTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListTurfs_Handler_Success(t *testing.T) {
	svc := &mockTurfService{
		listFn: func(ctx context.Context) ([]models.Turf, error) {
			return []models.Turf{
				{ID: "turf-1", Name: "Greenfield"},
				{ID: "turf-2", Name: "Bluefield"},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/turfs", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTurfHandler(svc)
	err := h.ListTurfs(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.TurfResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestUpdateTurf_Handler_Partial(t *testing.T) {
	var captured *dto.UpdateTurfRequest
	svc := &mockTurfService{
		updateFn: func(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error) {
			captured = req
			return &models.Turf{ID: id, Name: *req.Name, Location: "Sector 5", PricePerHour: 1000, Capacity: 14}, nil
		},
	}

	e := echo.New()
	body := `{"name":"Greenfield Arena"}`
	req := httptest.NewRequest(http.MethodPut, "/turfs/turf-1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("turf-1")

	h := NewTurfHandler(svc)
	err := h.UpdateTurf(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, captured.Name)
	assert.Nil(t, captured.Location)
	assert.Nil(t, captured.PricePerHour)
	assert.Nil(t, captured.Capacity)
}

func TestUpdateTurf_Handler_NotFound(t *testing.T) {
	svc := &mockTurfService{
		updateFn: func(ctx context.Context, id string, req *dto.UpdateTurfRequest) (*models.Turf, error) {
			return nil, service.ErrTurfNotFound
		},
	}

	e := echo.New()
	body := `{"name":"Greenfield Arena"}`
	req := httptest.NewRequest(http.MethodPut, "/turfs/missing", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewTurfHandler(svc)
	err := h.UpdateTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteTurf_Handler_Success(t *testing.T) {
	svc := &mockTurfService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/turfs/turf-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("turf-1")

	h := NewTurfHandler(svc)
	err := h.DeleteTurf(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.MessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Turf deleted successfully", resp.Message)
}

func TestDeleteTurf_Handler_NotFound(t *testing.T) {
	svc := &mockTurfService{
		deleteFn: func(ctx context.Context, id string) error { return service.ErrTurfNotFound },
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/turfs/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewTurfHandler(svc)
	err := h.DeleteTurf(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
