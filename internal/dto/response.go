package dto

import (
	"time"

	"github.com/turfbook/turf-booking-service/internal/models"
)

type TurfResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PricePerHour float64   `json:"pricePerHour"`
	Capacity     int       `json:"capacity"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	CustomerName string               `json:"customerName"`
	Phone        string               `json:"phone"`
	TurfID       string               `json:"turfId"`
	TurfName     string               `json:"turfName"`
	Date         string               `json:"date"`
	TimeSlot     string               `json:"timeSlot"`
	Duration     int                  `json:"duration"`
	Players      int                  `json:"players"`
	TotalPrice   float64              `json:"totalPrice"`
	Status       models.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func ToTurfResponse(t *models.Turf) TurfResponse {
	return TurfResponse{
		ID:           t.ID,
		Name:         t.Name,
		Location:     t.Location,
		PricePerHour: t.PricePerHour,
		Capacity:     t.Capacity,
		CreatedAt:    t.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		TurfID:       b.TurfID,
		TurfName:     b.TurfName,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
		Duration:     b.Duration,
		Players:      b.Players,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
