package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
)

type ActivityConsumer struct {
	repo repository.ActivityRepository
	log  *zap.Logger
}

func NewActivityConsumer(repo repository.ActivityRepository, log *zap.Logger) *ActivityConsumer {
	return &ActivityConsumer{repo: repo, log: log}
}

// Start records every delivery as an activity log entry until msgs closes or
// ctx is done. The returned channel closes when the loop exits.
func (ac *ActivityConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				ac.log.Info("activity consumer stopping", zap.Error(ctx.Err()))
				return
			case msg, ok := <-msgs:
				if !ok {
					ac.log.Info("delivery channel closed, stopping consumer")
					return
				}
				ac.handleMessage(ctx, msg)
			}
		}
	}()
	return done
}

func (ac *ActivityConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	if msg.RoutingKey == "" || !json.Valid(msg.Body) {
		ac.log.Warn("dropping malformed message",
			zap.String("routing_key", msg.RoutingKey),
			zap.Int("bytes", len(msg.Body)),
		)
		_ = msg.Nack(false, false)
		return
	}

	entry := &models.ActivityLog{
		RoutingKey: msg.RoutingKey,
		Payload:    datatypes.JSON(msg.Body),
	}
	if !msg.Timestamp.IsZero() {
		entry.ReceivedAt = msg.Timestamp.UTC()
	}

	if err := ac.repo.Create(ctx, entry); err != nil {
		ac.log.Error("failed to record activity",
			zap.String("routing_key", msg.RoutingKey),
			zap.Error(err),
		)
		_ = msg.Nack(false, true) // requeue
		return
	}

	ac.log.Debug("recorded activity", zap.String("routing_key", msg.RoutingKey), zap.String("id", entry.ID))
	_ = msg.Ack(false)
}
