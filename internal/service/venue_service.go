package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"gorm.io/gorm"
)

type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetVenue(ctx context.Context, id string) (*models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, id string, apply func(v *models.Venue)) (*models.Venue, error)
}

type venueService struct {
	repo repository.VenueRepository
}

func NewVenueService(repo repository.VenueRepository) VenueService {
	return &venueService{repo: repo}
}

func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if err := s.repo.Create(ctx, venue); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (s *venueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.repo.FindAll(ctx)
}

// UpdateVenue loads the venue, lets apply mutate it and saves the result.
// The id and timestamps are kept regardless of what apply does.
func (s *venueService) UpdateVenue(ctx context.Context, id string, apply func(v *models.Venue)) (*models.Venue, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	createdAt := venue.CreatedAt
	apply(venue)
	venue.ID = id
	venue.CreatedAt = createdAt

	if err := s.repo.Save(ctx, venue); err != nil {
		return nil, fmt.Errorf("save venue: %w", err)
	}
	return venue, nil
}
