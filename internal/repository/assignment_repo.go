package repository

import (
	"context"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *models.ShiftAssignment) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.ShiftAssignment, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.ShiftAssignment, error)
	FindByUser(ctx context.Context, userID string) ([]models.ShiftAssignment, error)
	FindActiveByUserAndShift(ctx context.Context, tx *gorm.DB, userID, shiftID string) (*models.ShiftAssignment, error)
	CountByStatus(ctx context.Context, tx *gorm.DB, shiftID string, status models.AssignmentStatus) (int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AssignmentStatus) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, tx *gorm.DB, assignment *models.ShiftAssignment) error {
	return tx.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	if err := tx.WithContext(ctx).First(&assignment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByIDForUpdate locks the assignment row within the given transaction.
func (r *assignmentRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&assignment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByUser(ctx context.Context, userID string) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := r.db.WithContext(ctx).
		Preload("Shift").
		Where("user_id = ?", userID).
		Order("assigned_at DESC, id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) FindActiveByUserAndShift(ctx context.Context, tx *gorm.DB, userID, shiftID string) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := tx.WithContext(ctx).
		Where("user_id = ? AND shift_id = ? AND status <> ?", userID, shiftID, models.AssignmentCancelled).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) CountByStatus(ctx context.Context, tx *gorm.DB, shiftID string, status models.AssignmentStatus) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.ShiftAssignment{}).
		Where("shift_id = ? AND status = ?", shiftID, status).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.AssignmentStatus) error {
	return tx.WithContext(ctx).
		Model(&models.ShiftAssignment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
