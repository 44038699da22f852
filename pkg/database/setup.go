package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Eursukkul/venue-staffing/internal/models"
)

// Seed documents use fixed ids so a repeated setup inserts nothing new.
var seedDocuments = []models.Document{
	{
		ID:        "00000000-0000-4000-8000-000000000001",
		Type:      models.DocumentUserGuide,
		Title:     "Getting started",
		Content:   "Browse open shifts from your dashboard, apply, and wait for a manager to confirm.",
		CreatedBy: "system",
	},
	{
		ID:        "00000000-0000-4000-8000-000000000002",
		Type:      models.DocumentPolicy,
		Title:     "Code of conduct",
		Content:   "Arrive on time, follow venue rules and report incidents to your manager.",
		CreatedBy: "system",
	},
}

// Setup creates or updates every table and inserts the reference documents.
// It takes no lock; two concurrent calls may both run.
func Setup(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	// Only one live assignment per user and shift.
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_assignment_active
		ON shift_assignments (shift_id, user_id)
		WHERE status <> 'CANCELLED'
	`).Error; err != nil {
		return fmt.Errorf("create assignment index: %w", err)
	}

	docs := make([]models.Document, len(seedDocuments))
	copy(docs, seedDocuments)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&docs).Error; err != nil {
		return fmt.Errorf("seed documents: %w", err)
	}
	return nil
}
