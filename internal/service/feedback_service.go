package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FeedbackService interface {
	Submit(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error)
	Review(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string) (*models.Feedback, error)
}

type feedbackService struct {
	repo      repository.FeedbackRepository
	venueRepo repository.VenueRepository
	publisher EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

func NewFeedbackService(repo repository.FeedbackRepository, venueRepo repository.VenueRepository, publisher EventPublisher, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo:      repo,
		venueRepo: venueRepo,
		publisher: publisher,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *feedbackService) Submit(ctx context.Context, feedback *models.Feedback) error {
	if _, err := s.venueRepo.FindByID(ctx, feedback.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("find venue: %w", err)
	}

	// New feedback always starts unreviewed whatever the caller sent.
	feedback.Status = models.FeedbackPending
	feedback.ReviewedBy = nil
	feedback.ReviewedAt = nil
	feedback.ReviewNotes = nil

	if err := s.repo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("create feedback: %w", err)
	}

	publish(s.log, s.publisher, KeyFeedbackSubmitted, feedback)
	return nil
}

func (s *feedbackService) List(ctx context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if !items[i].ReviewConsistent() {
			s.log.Warn("feedback review fields inconsistent with status",
				zap.String("feedback_id", items[i].ID),
				zap.String("status", string(items[i].Status)),
			)
		}
	}
	return items, nil
}

// Review moves feedback out of PENDING and records who reviewed it. A
// RESOLVED item is final.
func (s *feedbackService) Review(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string) (*models.Feedback, error) {
	if status != models.FeedbackReviewed && status != models.FeedbackResolved {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	if current.Status == models.FeedbackResolved {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	at := s.now()
	if err := s.repo.MarkReviewed(ctx, id, status, reviewer, notes, at); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		if errors.Is(err, repository.ErrFeedbackFinal) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, models.FeedbackResolved, status)
		}
		return nil, fmt.Errorf("review feedback: %w", err)
	}

	current.Status = status
	current.ReviewedBy = &reviewer
	current.ReviewedAt = &at
	current.ReviewNotes = &notes

	publish(s.log, s.publisher, KeyFeedbackReviewed, current)
	return current, nil
}
