package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/turfbook/turf-booking-service/internal/dto"
	"github.com/turfbook/turf-booking-service/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/bookings")
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.POST("", h.CreateBooking)
	g.PUT("/:id", h.UpdateBooking)
	g.DELETE("/:id", h.DeleteBooking)
}

// ListBookings returns all bookings, newest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching bookings").SetInternal(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching booking").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	if msg, ok := validateBooking(&req); !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields").SetInternal(errors.New(msg))
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTurf) {
			return echo.NewHTTPError(http.StatusBadRequest, "Error creating booking").SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error creating booking").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	var req dto.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}

	if req.Duration != nil && *req.Duration < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "duration must be at least 1 hour")
	}
	if req.Players != nil && *req.Players < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "must have at least 1 player")
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error updating booking").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	if err := h.svc.DeleteBooking(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Error deleting booking").SetInternal(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Booking deleted successfully"})
}

func validateBooking(req *dto.CreateBookingRequest) (string, bool) {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.TurfID == "" {
		missing = append(missing, "turfId")
	}
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.TimeSlot == "" {
		missing = append(missing, "timeSlot")
	}
	if req.Duration < 1 {
		missing = append(missing, "duration")
	}
	if req.Players < 1 {
		missing = append(missing, "players")
	}
	if len(missing) > 0 {
		return fmt.Sprintf("Please provide: %s", strings.Join(missing, ", ")), false
	}
	return "", true
}
