package inquiry

import (
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeOrderRequest = "OrderRequest"

// Event type constants
const (
	EventTypeOrderRequestSubmitted = "inquiry.order_request_submitted"
	EventTypeOrderRequestDecided   = "inquiry.order_request_decided"
)

// OrderRequestSubmittedEvent is published when a customer submits an inquiry
type OrderRequestSubmittedEvent struct {
	shared.BaseDomainEvent
	OrderRequestID uuid.UUID `json:"order_request_id"`
	UserID         uuid.UUID `json:"user_id"`
	ContactEmail   string    `json:"contact_email"`
	MaterialCount  int       `json:"material_count"`
}

// NewOrderRequestSubmittedEvent creates a new OrderRequestSubmittedEvent
func NewOrderRequestSubmittedEvent(r *OrderRequest) *OrderRequestSubmittedEvent {
	return &OrderRequestSubmittedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderRequestSubmitted, AggregateTypeOrderRequest, r.ID),
		OrderRequestID:  r.ID,
		UserID:          r.UserID,
		ContactEmail:    r.ContactEmail,
		MaterialCount:   len(r.Materials),
	}
}

// OrderRequestDecidedEvent is published when an admin approves or rejects
type OrderRequestDecidedEvent struct {
	shared.BaseDomainEvent
	OrderRequestID uuid.UUID     `json:"order_request_id"`
	UserID         uuid.UUID     `json:"user_id"`
	Status         RequestStatus `json:"status"`
}

// NewOrderRequestDecidedEvent creates a new OrderRequestDecidedEvent
func NewOrderRequestDecidedEvent(r *OrderRequest) *OrderRequestDecidedEvent {
	return &OrderRequestDecidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderRequestDecided, AggregateTypeOrderRequest, r.ID),
		OrderRequestID:  r.ID,
		UserID:          r.UserID,
		Status:          r.Status,
	}
}
