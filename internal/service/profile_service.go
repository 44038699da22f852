package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/validation"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	// SaveProfile validates values first; on failure nothing is written and
	// the field errors are returned with a nil error.
	SaveProfile(ctx context.Context, userID string, values validation.ProfileFormValues) (*models.Profile, validation.FieldErrors, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) SaveProfile(ctx context.Context, userID string, values validation.ProfileFormValues) (*models.Profile, validation.FieldErrors, error) {
	if errs := validation.ValidateProfile(values); len(errs) > 0 {
		return nil, errs, nil
	}

	profile := &models.Profile{
		UserID:            userID,
		DisplayName:       values.DisplayName,
		Bio:               values.Bio,
		EntertainmentType: values.EntertainmentType,
		HourlyRate:        values.HourlyRate,
		Experience:        values.Experience,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil, nil
}
