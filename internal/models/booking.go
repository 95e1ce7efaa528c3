package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// TimeSlots is the fixed set of start times the booking form offers.
// The server stores whatever slot string it receives; enforcement lives
// in the client.
var TimeSlots = []string{
	"06:00 AM", "08:00 AM", "10:00 AM", "12:00 PM",
	"02:00 PM", "04:00 PM", "06:00 PM", "08:00 PM",
}

type Booking struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerName string `gorm:"not null" json:"customerName"`
	Phone        string `gorm:"not null" json:"phone"`
	TurfID       string `gorm:"not null" json:"turfId"`
	// TurfName is a snapshot of the turf's name at booking time. It is
	// not kept in sync with later turf renames.
	TurfName   string        `gorm:"not null" json:"turfName"`
	Date       string        `gorm:"not null" json:"date"`
	TimeSlot   string        `gorm:"not null" json:"timeSlot"`
	Duration   int           `gorm:"not null" json:"duration"`
	Players    int           `gorm:"not null" json:"players"`
	TotalPrice float64       `gorm:"not null" json:"totalPrice"`
	Status     BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt  time.Time     `gorm:"index" json:"createdAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
