package repository

import (
	"context"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftFilter struct {
	VenueID string
	Status  *models.ShiftStatus
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *models.Shift) error
	FindByID(ctx context.Context, id string) (*models.Shift, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.ShiftStatus) error
	GetDB() *gorm.DB
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *shiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) FindByID(ctx context.Context, id string) (*models.Shift, error) {
	var shift models.Shift
	if err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

// FindByIDForUpdate acquires a row-level lock on the shift within the given transaction.
func (r *shiftRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Shift, error) {
	var shift models.Shift
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) List(ctx context.Context, filter ShiftFilter) ([]models.Shift, error) {
	var shifts []models.Shift
	q := r.db.WithContext(ctx)
	if filter.VenueID != "" {
		q = q.Where("venue_id = ?", filter.VenueID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if err := q.Order("date ASC, start_time ASC, id ASC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, id string, status models.ShiftStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ?", id).
		Update("status", status).Error
}
