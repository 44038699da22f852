package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog is one message received from the staffing exchange.
type ActivityLog struct {
	ID         string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoutingKey string         `gorm:"type:varchar(64);not null;index" json:"routing_key"`
	Payload    datatypes.JSON `json:"payload"`
	ReceivedAt time.Time      `gorm:"not null;index" json:"received_at"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	if a.ReceivedAt.IsZero() {
		a.ReceivedAt = time.Now().UTC()
	}
	return nil
}

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Venue{},
		&Shift{},
		&ShiftAssignment{},
		&Feedback{},
		&Document{},
		&DocumentAccess{},
		&Profile{},
		&ActivityLog{},
	}
}
