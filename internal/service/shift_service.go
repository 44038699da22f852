package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShiftService interface {
	CreateShift(ctx context.Context, shift *models.Shift) error
	ListShifts(ctx context.Context, filter repository.ShiftFilter) ([]models.Shift, error)
	AdvanceStatus(ctx context.Context, shiftID string, next models.ShiftStatus) (*models.Shift, error)
	Apply(ctx context.Context, shiftID, userID string) (*models.ShiftAssignment, error)
	ListAssignments(ctx context.Context, userID string) ([]models.ShiftAssignment, error)
	UpdateAssignment(ctx context.Context, assignmentID string, status models.AssignmentStatus) (*models.ShiftAssignment, error)
}

type shiftService struct {
	shiftRepo      repository.ShiftRepository
	assignmentRepo repository.AssignmentRepository
	venueRepo      repository.VenueRepository
	publisher      EventPublisher
	log            *zap.Logger
}

func NewShiftService(
	shiftRepo repository.ShiftRepository,
	assignmentRepo repository.AssignmentRepository,
	venueRepo repository.VenueRepository,
	publisher EventPublisher,
	log *zap.Logger,
) ShiftService {
	return &shiftService{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		venueRepo:      venueRepo,
		publisher:      publisher,
		log:            log,
	}
}

func (s *shiftService) CreateShift(ctx context.Context, shift *models.Shift) error {
	if _, err := s.venueRepo.FindByID(ctx, shift.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return fmt.Errorf("find venue: %w", err)
	}
	if shift.Status == "" {
		shift.Status = models.ShiftOpen
	}
	if !shift.Status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return fmt.Errorf("create shift: %w", err)
	}

	publish(s.log, s.publisher, KeyShiftCreated, shift)
	return nil
}

func (s *shiftService) ListShifts(ctx context.Context, filter repository.ShiftFilter) ([]models.Shift, error) {
	return s.shiftRepo.List(ctx, filter)
}

func (s *shiftService) AdvanceStatus(ctx context.Context, shiftID string, next models.ShiftStatus) (*models.Shift, error) {
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}

	var result *models.Shift
	err := s.shiftRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shift, err := s.shiftRepo.FindByIDForUpdate(ctx, tx, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			return err
		}

		if !shift.Status.CanAdvanceTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, shift.Status, next)
		}

		if err := s.shiftRepo.UpdateStatus(ctx, tx, shift.ID, next); err != nil {
			return err
		}
		shift.Status = next
		result = shift
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.log, s.publisher, KeyShiftStatusChanged, result)
	return result, nil
}

func (s *shiftService) Apply(ctx context.Context, shiftID, userID string) (*models.ShiftAssignment, error) {
	var result *models.ShiftAssignment

	err := s.shiftRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the shift row so concurrent applications see the same status
		shift, err := s.shiftRepo.FindByIDForUpdate(ctx, tx, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			return err
		}

		// 2. Only open shifts take applications
		if shift.Status != models.ShiftOpen {
			return ErrShiftNotOpen
		}

		// 3. One live assignment per user and shift
		_, err = s.assignmentRepo.FindActiveByUserAndShift(ctx, tx, userID, shiftID)
		if err == nil {
			return ErrAlreadyApplied
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		assignment := &models.ShiftAssignment{
			ShiftID: shiftID,
			UserID:  userID,
			Status:  models.AssignmentPending,
		}
		if err := s.assignmentRepo.Create(ctx, tx, assignment); err != nil {
			return err
		}
		result = assignment
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.log, s.publisher, KeyAssignmentCreated, result)
	return result, nil
}

func (s *shiftService) ListAssignments(ctx context.Context, userID string) ([]models.ShiftAssignment, error) {
	return s.assignmentRepo.FindByUser(ctx, userID)
}

// UpdateAssignment confirms or cancels an assignment. Once the confirmed
// count reaches the shift's positions an open shift becomes ASSIGNED.
// Confirming needs an OPEN shift; cancelling is allowed in any shift status.
func (s *shiftService) UpdateAssignment(ctx context.Context, assignmentID string, status models.AssignmentStatus) (*models.ShiftAssignment, error) {
	if status != models.AssignmentConfirmed && status != models.AssignmentCancelled {
		return nil, ErrInvalidStatus
	}

	var (
		result       *models.ShiftAssignment
		shiftChanged *models.Shift
	)
	err := s.shiftRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Resolve the shift so its lock is always taken first
		peek, err := s.assignmentRepo.FindByID(ctx, tx, assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		shift, err := s.shiftRepo.FindByIDForUpdate(ctx, tx, peek.ShiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			return err
		}

		// 2. Re-read under lock; the status may have moved since the peek
		assignment, err := s.assignmentRepo.FindByIDForUpdate(ctx, tx, assignmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}

		if assignment.Status == models.AssignmentCancelled || assignment.Status == status {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, assignment.Status, status)
		}
		if status == models.AssignmentConfirmed && shift.Status != models.ShiftOpen {
			return ErrShiftNotOpen
		}

		if err := s.assignmentRepo.UpdateStatus(ctx, tx, assignment.ID, status); err != nil {
			return err
		}
		assignment.Status = status
		result = assignment

		if status != models.AssignmentConfirmed || shift.Positions == 0 {
			return nil
		}

		confirmed, err := s.assignmentRepo.CountByStatus(ctx, tx, shift.ID, models.AssignmentConfirmed)
		if err != nil {
			return err
		}
		if int(confirmed) < shift.Positions {
			return nil
		}
		if err := s.shiftRepo.UpdateStatus(ctx, tx, shift.ID, models.ShiftAssigned); err != nil {
			return err
		}
		shift.Status = models.ShiftAssigned
		shiftChanged = shift
		return nil
	})
	if err != nil {
		return nil, err
	}

	publish(s.log, s.publisher, KeyAssignmentUpdated, result)
	if shiftChanged != nil {
		publish(s.log, s.publisher, KeyShiftStatusChanged, shiftChanged)
	}
	return result, nil
}
