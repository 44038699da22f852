package service

import "go.uber.org/zap"

// EventPublisher announces state changes to other consumers.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

const (
	KeyShiftCreated          = "shift.created"
	KeyShiftStatusChanged    = "shift.status_changed"
	KeyAssignmentCreated     = "assignment.created"
	KeyAssignmentUpdated     = "assignment.updated"
	KeyFeedbackSubmitted     = "feedback.submitted"
	KeyFeedbackReviewed      = "feedback.reviewed"
	KeyDocumentAccessGranted = "document.access_granted"
)

// publish is best effort: the write already committed, so a broker failure
// is logged and swallowed.
func publish(log *zap.Logger, pub EventPublisher, key string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(key, payload); err != nil {
		log.Warn("publish failed", zap.String("routing_key", key), zap.Error(err))
	}
}
