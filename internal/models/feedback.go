package models

import (
	"time"

	"gorm.io/gorm"
)

type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "PENDING"
	FeedbackReviewed FeedbackStatus = "REVIEWED"
	FeedbackResolved FeedbackStatus = "RESOLVED"
)

func (s FeedbackStatus) Valid() bool {
	switch s {
	case FeedbackPending, FeedbackReviewed, FeedbackResolved:
		return true
	}
	return false
}

type Feedback struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	VenueID      string         `gorm:"type:varchar(36);not null;index" json:"venue_id"`
	UserID       string         `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Rating       int            `gorm:"not null" json:"rating"`
	MayNotReturn bool           `gorm:"not null;default:false" json:"may_not_return"`
	Comment      string         `gorm:"type:text" json:"comment"`
	Status       FeedbackStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ReviewedBy   *string        `gorm:"type:varchar(64)" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
	ReviewNotes  *string        `gorm:"type:text" json:"review_notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	if f.Status == "" {
		f.Status = FeedbackPending
	}
	return nil
}

// ReviewConsistent reports whether the review fields are present exactly
// when the feedback has left PENDING. Storage does not enforce this.
func (f *Feedback) ReviewConsistent() bool {
	reviewed := f.ReviewedBy != nil && f.ReviewedAt != nil && f.ReviewNotes != nil
	untouched := f.ReviewedBy == nil && f.ReviewedAt == nil && f.ReviewNotes == nil
	if f.Status == FeedbackPending {
		return untouched
	}
	return reviewed
}
