package dto

import "github.com/turfbook/turf-booking-service/internal/models"

type CreateTurfRequest struct {
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	PricePerHour *float64 `json:"pricePerHour"`
	Capacity     *int     `json:"capacity"`
}

// UpdateTurfRequest carries a partial update: nil fields are left untouched.
type UpdateTurfRequest struct {
	Name         *string  `json:"name"`
	Location     *string  `json:"location"`
	PricePerHour *float64 `json:"pricePerHour"`
	Capacity     *int     `json:"capacity"`
}

type CreateBookingRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	TurfID       string `json:"turfId"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
	Duration     int    `json:"duration"`
	Players      int    `json:"players"`
}

// UpdateBookingRequest carries a partial update: every non-nil field is
// merged over the stored booking. TotalPrice is never recomputed here,
// even when Duration changes.
type UpdateBookingRequest struct {
	CustomerName *string               `json:"customerName"`
	Phone        *string               `json:"phone"`
	TurfID       *string               `json:"turfId"`
	TurfName     *string               `json:"turfName"`
	Date         *string               `json:"date"`
	TimeSlot     *string               `json:"timeSlot"`
	Duration     *int                  `json:"duration"`
	Players      *int                  `json:"players"`
	TotalPrice   *float64              `json:"totalPrice"`
	Status       *models.BookingStatus `json:"status"`
}
