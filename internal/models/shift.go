package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ShiftStatus string

const (
	ShiftOpen      ShiftStatus = "OPEN"
	ShiftAssigned  ShiftStatus = "ASSIGNED"
	ShiftCompleted ShiftStatus = "COMPLETED"
)

var shiftStatusRank = map[ShiftStatus]int{
	ShiftOpen:      0,
	ShiftAssigned:  1,
	ShiftCompleted: 2,
}

func (s ShiftStatus) Valid() bool {
	_, ok := shiftStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// monotonic (OPEN -> ASSIGNED -> COMPLETED, never backwards, never in place).
func (s ShiftStatus) CanAdvanceTo(next ShiftStatus) bool {
	from, ok := shiftStatusRank[s]
	if !ok {
		return false
	}
	to, ok := shiftStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Shift struct {
	ID           string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	VenueID      string                      `gorm:"type:varchar(36);not null;index" json:"venue_id"`
	Date         string                      `gorm:"type:varchar(10);not null" json:"date"`
	StartTime    string                      `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime      string                      `gorm:"type:varchar(5);not null" json:"end_time"`
	Status       ShiftStatus                 `gorm:"type:varchar(20);not null;default:'OPEN'" json:"status"`
	Positions    int                         `gorm:"not null;default:0" json:"positions"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	HourlyRate   float64                     `gorm:"not null;default:0" json:"hourly_rate"`
	Description  string                      `json:"description"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	if s.Status == "" {
		s.Status = ShiftOpen
	}
	return nil
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "PENDING"
	AssignmentConfirmed AssignmentStatus = "CONFIRMED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentPending, AssignmentConfirmed, AssignmentCancelled:
		return true
	}
	return false
}

type ShiftAssignment struct {
	ID         string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ShiftID    string           `gorm:"type:varchar(36);not null;index" json:"shift_id"`
	UserID     string           `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Status     AssignmentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	AssignedAt time.Time        `gorm:"not null" json:"assigned_at"`

	Shift *Shift `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

func (a *ShiftAssignment) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	if a.Status == "" {
		a.Status = AssignmentPending
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	return nil
}
