package notification

import (
	"context"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service reacts to domain events that warrant customer or shopkeeper
// notification. Delivery is a structured log line for now; the event
// subscription is the integration point a real mail or SMS sender plugs
// into without touching the publishing services.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new notification Service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger.Named("notification")}
}

// EventTypes lists the events that trigger a notification
func (s *Service) EventTypes() []string {
	return []string{
		order.EventTypeOrderCreated,
		order.EventTypeOrderPaymentApproved,
		order.EventTypeOrderCancelled,
		order.EventTypeReturnRequested,
		order.EventTypeReturnApproved,
		order.EventTypeReturnRejected,
		order.EventTypeReturnRefunded,
		inquiry.EventTypeOrderRequestSubmitted,
	}
}

// Handle dispatches one notification per event
func (s *Service) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *order.OrderCreatedEvent:
		s.logger.Info("order confirmation queued",
			zap.String("order_number", e.OrderNumber),
			zap.String("user_id", e.UserID.String()),
			zap.String("total", e.TotalAmount.StringFixed(2)),
			zap.Int("items", e.ItemCount),
		)
	case *order.OrderPaymentApprovedEvent:
		s.logger.Info("payment approval notice queued",
			zap.String("order_number", e.OrderNumber),
			zap.String("approved_by", e.ApprovedBy.String()),
		)
	case *order.OrderCancelledEvent:
		s.logger.Info("cancellation notice queued",
			zap.String("order_number", e.OrderNumber),
			zap.String("user_id", e.UserID.String()),
			zap.String("reason", e.Reason),
		)
	case *order.ReturnRequestedEvent:
		s.logger.Info("return received notice queued",
			zap.String("return_number", e.ReturnNumber),
			zap.String("user_id", e.UserID.String()),
			zap.String("reason_code", e.ReasonCode),
		)
	case *order.ReturnReviewedEvent:
		s.logger.Info("return decision notice queued",
			zap.String("return_number", e.ReturnNumber),
			zap.String("order_id", e.OrderID.String()),
			zap.String("status", e.Status.String()),
		)
	case *inquiry.OrderRequestSubmittedEvent:
		s.logger.Info("inquiry acknowledgement queued",
			zap.String("request_id", e.OrderRequestID.String()),
			zap.String("contact_email", e.ContactEmail),
		)
	default:
		s.logger.Debug("event without notification mapping",
			zap.String("event_type", event.EventType()),
		)
	}
	return nil
}

var _ shared.EventHandler = (*Service)(nil)
