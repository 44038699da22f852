package models

import "time"

type Profile struct {
	UserID            string    `gorm:"primaryKey;type:varchar(64)" json:"user_id"`
	DisplayName       string    `gorm:"not null" json:"display_name"`
	Bio               string    `gorm:"type:text" json:"bio"`
	EntertainmentType string    `gorm:"type:varchar(20)" json:"entertainment_type"`
	HourlyRate        string    `gorm:"type:varchar(16)" json:"hourly_rate"`
	Experience        string    `gorm:"type:varchar(16)" json:"experience"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
