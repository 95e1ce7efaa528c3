package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Turf struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Location     string    `gorm:"not null" json:"location"`
	PricePerHour float64   `gorm:"not null" json:"pricePerHour"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (t *Turf) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
