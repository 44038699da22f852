package models

import (
	"time"

	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentVenueGuide DocumentType = "VENUE_GUIDE"
	DocumentUserGuide  DocumentType = "USER_GUIDE"
	DocumentPolicy     DocumentType = "POLICY"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocumentVenueGuide, DocumentUserGuide, DocumentPolicy:
		return true
	}
	return false
}

type Document struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Type      DocumentType `gorm:"type:varchar(20);not null" json:"type"`
	Title     string       `gorm:"not null" json:"title"`
	Content   string       `gorm:"type:text" json:"content"`
	VenueID   *string      `gorm:"type:varchar(36);index" json:"venue_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	CreatedBy string       `gorm:"type:varchar(64)" json:"created_by"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	assignID(&d.ID)
	return nil
}

// VenueLinkConsistent reports whether venue_id is set exactly for venue guides.
func (d *Document) VenueLinkConsistent() bool {
	hasVenue := d.VenueID != nil && *d.VenueID != ""
	return hasVenue == (d.Type == DocumentVenueGuide)
}

type AccessType string

const (
	AccessView AccessType = "VIEW"
	AccessEdit AccessType = "EDIT"
)

func (a AccessType) Valid() bool {
	return a == AccessView || a == AccessEdit
}

type DocumentAccess struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	DocumentID string     `gorm:"type:varchar(36);not null;index" json:"document_id"`
	UserID     string     `gorm:"type:varchar(64);not null;index" json:"user_id"`
	AccessType AccessType `gorm:"type:varchar(10);not null" json:"access_type"`
	GrantedAt  time.Time  `gorm:"not null" json:"granted_at"`
	GrantedBy  string     `gorm:"type:varchar(64)" json:"granted_by"`

	Document *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}

func (DocumentAccess) TableName() string { return "document_access" }

func (a *DocumentAccess) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	if a.GrantedAt.IsZero() {
		a.GrantedAt = time.Now().UTC()
	}
	return nil
}
