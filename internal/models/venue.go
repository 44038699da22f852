package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VenueRates struct {
	Weekday float64 `gorm:"not null;default:0" json:"weekday"`
	Weekend float64 `gorm:"not null;default:0" json:"weekend"`
	Hourly  float64 `gorm:"not null;default:0" json:"hourly"`
}

type Venue struct {
	ID          string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Address     string                      `json:"address"`
	Suburb      string                      `json:"suburb"`
	Capacity    int                         `gorm:"not null;default:0" json:"capacity"`
	Amenities   datatypes.JSONSlice[string] `json:"amenities"`
	Rates       VenueRates                  `gorm:"embedded;embeddedPrefix:rate_" json:"rates"`
	Description string                      `json:"description"`
	ImageURL    string                      `json:"image_url"`
	Type        string                      `gorm:"type:varchar(50)" json:"type"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}
