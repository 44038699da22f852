package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"gorm.io/gorm"
)

// ErrFeedbackFinal is returned by MarkReviewed when the row exists but is
// already RESOLVED.
var ErrFeedbackFinal = errors.New("feedback already resolved")

type FeedbackFilter struct {
	VenueID string
	Status  *models.FeedbackStatus
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindByID(ctx context.Context, id string) (*models.Feedback, error)
	List(ctx context.Context, filter FeedbackFilter) ([]models.Feedback, error)
	MarkReviewed(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string, at time.Time) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindByID(ctx context.Context, id string) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) List(ctx context.Context, filter FeedbackFilter) ([]models.Feedback, error) {
	var items []models.Feedback
	q := r.db.WithContext(ctx)
	if filter.VenueID != "" {
		q = q.Where("venue_id = ?", filter.VenueID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if err := q.Order("created_at DESC, id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MarkReviewed writes the status and all review fields in one statement.
// RESOLVED rows are never touched.
func (r *feedbackRepository) MarkReviewed(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ? AND status <> ?", id, models.FeedbackResolved).
		Updates(map[string]any{
			"status":       status,
			"reviewed_by":  reviewer,
			"reviewed_at":  at,
			"review_notes": notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Feedback{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrFeedbackFinal
	}
	return nil
}
