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

type DocumentService interface {
	CreateDocument(ctx context.Context, doc *models.Document) error
	GrantAccess(ctx context.Context, access *models.DocumentAccess) error
	ListForUser(ctx context.Context, userID string) ([]models.Document, error)
}

type documentService struct {
	repo      repository.DocumentRepository
	venueRepo repository.VenueRepository
	publisher EventPublisher
	log       *zap.Logger
}

func NewDocumentService(repo repository.DocumentRepository, venueRepo repository.VenueRepository, publisher EventPublisher, log *zap.Logger) DocumentService {
	return &documentService{repo: repo, venueRepo: venueRepo, publisher: publisher, log: log}
}

func (s *documentService) CreateDocument(ctx context.Context, doc *models.Document) error {
	if !doc.Type.Valid() {
		return ErrInvalidType
	}
	if !doc.VenueLinkConsistent() {
		return ErrInvalidDocument
	}
	if doc.VenueID != nil {
		if _, err := s.venueRepo.FindByID(ctx, *doc.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return fmt.Errorf("find venue: %w", err)
		}
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (s *documentService) GrantAccess(ctx context.Context, access *models.DocumentAccess) error {
	if !access.AccessType.Valid() {
		return ErrInvalidType
	}
	if _, err := s.repo.FindByID(ctx, access.DocumentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("find document: %w", err)
	}
	if err := s.repo.GrantAccess(ctx, access); err != nil {
		return fmt.Errorf("grant access: %w", err)
	}

	publish(s.log, s.publisher, KeyDocumentAccessGranted, access)
	return nil
}

func (s *documentService) ListForUser(ctx context.Context, userID string) ([]models.Document, error) {
	return s.repo.FindAccessibleByUser(ctx, userID)
}
