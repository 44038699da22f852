package repository

import (
	"context"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	FindByID(ctx context.Context, id string) (*models.Document, error)
	FindAccessibleByUser(ctx context.Context, userID string) ([]models.Document, error)
	GrantAccess(ctx context.Context, access *models.DocumentAccess) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) FindByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// FindAccessibleByUser returns each document the user holds at least one grant for.
func (r *documentRepository) FindAccessibleByUser(ctx context.Context, userID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&models.DocumentAccess{}).Select("document_id").Where("user_id = ?", userID)).
		Order("title ASC, id ASC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) GrantAccess(ctx context.Context, access *models.DocumentAccess) error {
	return r.db.WithContext(ctx).Create(access).Error
}
