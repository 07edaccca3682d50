package order

import (
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeOrder         = "Order"
	AggregateTypeReturnRequest = "ReturnRequest"
)

// Event type constants
const (
	EventTypeOrderCreated         = "order.created"
	EventTypeOrderPaymentApproved = "order.payment_approved"
	EventTypeOrderStatusChanged   = "order.status_changed"
	EventTypeOrderCancelled       = "order.cancelled"
	EventTypeReturnRequested      = "return.requested"
	EventTypeReturnApproved       = "return.approved"
	EventTypeReturnRejected       = "return.rejected"
	EventTypeReturnRefunded       = "return.refunded"
)

// OrderCreatedEvent is published when a new order is placed at checkout
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	UserID      uuid.UUID       `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(o *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		ItemCount:       len(o.Items),
	}
}

// OrderPaymentApprovedEvent is published when an admin confirms the advance payment
type OrderPaymentApprovedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ApprovedBy  uuid.UUID `json:"approved_by"`
}

// NewOrderPaymentApprovedEvent creates a new OrderPaymentApprovedEvent
func NewOrderPaymentApprovedEvent(o *Order, approvedBy uuid.UUID) *OrderPaymentApprovedEvent {
	return &OrderPaymentApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaymentApproved, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		ApprovedBy:      approvedBy,
	}
}

// OrderStatusChangedEvent is published on shipped/delivered transitions
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID   `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	UserID      uuid.UUID   `json:"user_id"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, oldStatus OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		OldStatus:       oldStatus,
		NewStatus:       o.Status,
	}
}

// OrderCancelledEvent is published when an order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      uuid.UUID `json:"user_id"`
	Reason      string    `json:"reason,omitempty"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(o *Order, reason string) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCancelled, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		Reason:          reason,
	}
}

// ReturnRequestedEvent is published when a customer submits a return
type ReturnRequestedEvent struct {
	shared.BaseDomainEvent
	ReturnRequestID uuid.UUID `json:"return_request_id"`
	ReturnNumber    string    `json:"return_number"`
	OrderID         uuid.UUID `json:"order_id"`
	UserID          uuid.UUID `json:"user_id"`
	ReasonCode      string    `json:"reason_code"`
}

// NewReturnRequestedEvent creates a new ReturnRequestedEvent
func NewReturnRequestedEvent(r *ReturnRequest) *ReturnRequestedEvent {
	return &ReturnRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReturnRequested, AggregateTypeReturnRequest, r.ID),
		ReturnRequestID: r.ID,
		ReturnNumber:    r.ReturnNumber,
		OrderID:         r.OrderID,
		UserID:          r.UserID,
		ReasonCode:      r.ReasonCode,
	}
}

// ReturnReviewedEvent is published when an admin approves or rejects a return
type ReturnReviewedEvent struct {
	shared.BaseDomainEvent
	ReturnRequestID uuid.UUID           `json:"return_request_id"`
	ReturnNumber    string              `json:"return_number"`
	OrderID         uuid.UUID           `json:"order_id"`
	Status          ReturnRequestStatus `json:"status"`
	ReviewedBy      uuid.UUID           `json:"reviewed_by"`
}

// NewReturnReviewedEvent creates a review outcome event typed by the new status
func NewReturnReviewedEvent(r *ReturnRequest, reviewedBy uuid.UUID) *ReturnReviewedEvent {
	eventType := EventTypeReturnApproved
	switch r.Status {
	case ReturnStatusRejected:
		eventType = EventTypeReturnRejected
	case ReturnStatusRefunded:
		eventType = EventTypeReturnRefunded
	}
	return &ReturnReviewedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeReturnRequest, r.ID),
		ReturnRequestID: r.ID,
		ReturnNumber:    r.ReturnNumber,
		OrderID:         r.OrderID,
		Status:          r.Status,
		ReviewedBy:      reviewedBy,
	}
}
