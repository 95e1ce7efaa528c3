package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/turfbook/turf-booking-service/internal/dto"
	"github.com/turfbook/turf-booking-service/internal/models"
	"github.com/turfbook/turf-booking-service/internal/service"
)

type TurfHandler struct {
	svc service.TurfService
}

func NewTurfHandler(svc service.TurfService) *TurfHandler {
	return &TurfHandler{svc: svc}
}

func (h *TurfHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/turfs")
	g.GET("", h.ListTurfs)
	g.GET("/:id", h.GetTurf)
	g.POST("", h.CreateTurf)
	g.PUT("/:id", h.UpdateTurf)
	g.DELETE("/:id", h.DeleteTurf)
}

func (h *TurfHandler) ListTurfs(c echo.Context) error {
	turfs, err := h.svc.ListTurfs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching turfs").SetInternal(err)
	}

	resp := make([]dto.TurfResponse, len(turfs))
	for i, t := range turfs {
		resp[i] = dto.ToTurfResponse(&t)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TurfHandler) GetTurf(c echo.Context) error {
	turf, err := h.svc.GetTurf(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTurfNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Turf not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching turf").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.ToTurfResponse(turf))
}

func (h *TurfHandler) CreateTurf(c echo.Context) error {
	var req dto.CreateTurfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	if msg, ok := validateTurf(&req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Error creating turf").SetInternal(errors.New(msg))
	}

	turf := &models.Turf{
		Name:         req.Name,
		Location:     req.Location,
		PricePerHour: *req.PricePerHour,
		Capacity:     *req.Capacity,
	}

	if err := h.svc.CreateTurf(c.Request().Context(), turf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating turf").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, dto.ToTurfResponse(turf))
}

func (h *TurfHandler) UpdateTurf(c echo.Context) error {
	var req dto.UpdateTurfRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	if req.PricePerHour != nil && *req.PricePerHour < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "pricePerHour cannot be negative")
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "capacity must be at least 1")
	}

	turf, err := h.svc.UpdateTurf(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrTurfNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Turf not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating turf").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.ToTurfResponse(turf))
}

func (h *TurfHandler) DeleteTurf(c echo.Context) error {
	if err := h.svc.DeleteTurf(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTurfNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Turf not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error deleting turf").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Turf deleted successfully"})
}

func validateTurf(req *dto.CreateTurfRequest) (string, bool) {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if req.PricePerHour == nil {
		missing = append(missing, "pricePerHour")
	}
	if req.Capacity == nil {
		missing = append(missing, "capacity")
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Please provide: %s", strings.Join(missing, ", ")), false
	}
	if *req.PricePerHour < 0 {
		return "pricePerHour cannot be negative", false
	}
	if *req.Capacity < 1 {
		return "capacity must be at least 1", false
	}
	return "", true
}
