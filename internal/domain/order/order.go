package order

import (
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	// OrderStatusPendingPaymentApproval awaits admin confirmation of a
	// partial advance payment
	OrderStatusPendingPaymentApproval OrderStatus = "pending-payment-approval"
	OrderStatusPending                OrderStatus = "pending"
	OrderStatusShipped                OrderStatus = "shipped"
	OrderStatusDelivered              OrderStatus = "delivered"
	OrderStatusCancelled              OrderStatus = "cancelled"
)

// IsValid checks if the status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingPaymentApproval, OrderStatusPending,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if transition to target status is allowed.
// The graph is strict: delivered and cancelled are terminal, and fulfilment
// only moves forward.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPendingPaymentApproval: {OrderStatusPending, OrderStatusCancelled},
		OrderStatusPending:                {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:                {OrderStatusDelivered, OrderStatusCancelled},
		OrderStatusDelivered:              {},
		OrderStatusCancelled:              {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves this status
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ReturnMirrorStatus mirrors the latest return request's state onto the
// order so listing views never join against the returns table
type ReturnMirrorStatus string

const (
	ReturnMirrorNone      ReturnMirrorStatus = "none"
	ReturnMirrorRequested ReturnMirrorStatus = "requested"
	ReturnMirrorApproved  ReturnMirrorStatus = "approved"
	ReturnMirrorRejected  ReturnMirrorStatus = "rejected"
	ReturnMirrorRefunded  ReturnMirrorStatus = "refunded"
)

// PaymentMethod identifies how the customer pays
type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodUPIFull    PaymentMethod = "upi-full"
	PaymentMethodUPIPartial PaymentMethod = "upi-partial"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodUPIFull || m == PaymentMethodUPIPartial
}

// PaymentDetails records advance/remaining amounts for partial payments
type PaymentDetails struct {
	AdvanceAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"advance_amount"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"remaining_amount"`
}

// ShippingAddress is the immutable address snapshot taken at checkout
type ShippingAddress struct {
	FullName string `gorm:"type:varchar(100)" json:"full_name"`
	Line1    string `gorm:"type:varchar(200)" json:"line1"`
	Line2    string `gorm:"type:varchar(200)" json:"line2"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	State    string `gorm:"type:varchar(100)" json:"state"`
	Pincode  string `gorm:"type:varchar(6)" json:"pincode"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
}

// OrderItem is a denormalized snapshot of a product line at purchase time.
// Later catalog changes must never alter historical orders, so name, image
// and unit price are copied, not joined.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(200);not null"`
	ProductImage string          `gorm:"type:varchar(500)"`
	Size         string          `gorm:"type:varchar(50);not null;default:''"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity     int             `gorm:"not null"`
	LineTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Order is the aggregate root for the purchase lifecycle. Orders are
// immutable after creation except status, returnStatus and deliveryDate.
type Order struct {
	shared.BaseAggregateRoot
	OrderNumber     string             `gorm:"type:varchar(30);not null;uniqueIndex"`
	UserID          uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status          OrderStatus        `gorm:"type:varchar(30);not null;index"`
	ReturnStatus    ReturnMirrorStatus `gorm:"type:varchar(20);not null;default:'none'"`
	Items           []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	ShippingFee     decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	Tax             decimal.Decimal    `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal    `gorm:"type:decimal(12,2);not null"`
	PaymentMethod   PaymentMethod      `gorm:"type:varchar(20);not null"`
	PaymentDetails  PaymentDetails     `gorm:"embedded;embeddedPrefix:payment_"`
	ShippingAddress ShippingAddress    `gorm:"embedded;embeddedPrefix:ship_"`

	PaymentApprovedAt *time.Time
	ShippedAt         *time.Time
	DeliveryDate      *time.Time
	CancelledAt       *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates an order from item snapshots. Partial-UPI orders start in
// pending-payment-approval; everything else starts in pending.
func NewOrder(userID uuid.UUID, items []OrderItem, shipping ShippingAddress, method PaymentMethod, details PaymentDetails, shippingFee, tax decimal.Decimal) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	status := OrderStatusPending
	if method == PaymentMethodUPIPartial {
		status = OrderStatusPendingPaymentApproval
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            status,
		ReturnStatus:      ReturnMirrorNone,
		PaymentMethod:     method,
		PaymentDetails:    details,
		ShippingAddress:   shipping,
		ShippingFee:       shippingFee,
		Tax:               tax,
	}

	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = o.ID
		items[i].LineTotal = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
	}
	o.Items = items
	o.recalculateTotals()

	o.AddDomainEvent(NewOrderCreatedEvent(o))

	return o, nil
}

// recalculateTotals recomputes subtotal and total from the item lines
func (o *Order) recalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	o.Subtotal = subtotal
	o.TotalAmount = subtotal.Add(o.ShippingFee).Add(o.Tax)
}

// ApprovePayment confirms the advance payment. Only orders awaiting payment
// approval accept it; nothing else changes status through this action.
func (o *Order) ApprovePayment(adminID uuid.UUID) error {
	if o.Status != OrderStatusPendingPaymentApproval {
		return shared.NewDomainError("INVALID_STATE",
			"Payment can only be approved for orders pending payment approval, current status: "+o.Status.String())
	}

	now := time.Now()
	o.Status = OrderStatusPending
	o.PaymentApprovedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderPaymentApprovedEvent(o, adminID))

	return nil
}

// MarkShipped transitions the order to shipped
func (o *Order) MarkShipped() error {
	if !o.Status.CanTransitionTo(OrderStatusShipped) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot ship order in status: "+o.Status.String())
	}

	now := time.Now()
	previous := o.Status
	o.Status = OrderStatusShipped
	o.ShippedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))

	return nil
}

// MarkDelivered transitions the order to delivered and stamps the delivery
// date in the same mutation; the return eligibility window starts here.
func (o *Order) MarkDelivered() error {
	if !o.Status.CanTransitionTo(OrderStatusDelivered) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot deliver order in status: "+o.Status.String())
	}

	now := time.Now()
	previous := o.Status
	o.Status = OrderStatusDelivered
	o.DeliveryDate = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous))

	return nil
}

// Cancel transitions the order to cancelled from any non-terminal state
func (o *Order) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot cancel order in status: "+o.Status.String())
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderCancelledEvent(o, reason))

	return nil
}

// MirrorReturnStatus records the latest return request state on the order.
// Persisted together with the return request in one transaction so the two
// documents never disagree.
func (o *Order) MirrorReturnStatus(status ReturnMirrorStatus) error {
	if status == ReturnMirrorRequested {
		if o.Status != OrderStatusDelivered {
			return shared.NewDomainError("INVALID_STATE", "Returns require a delivered order")
		}
		if o.HasReturn() {
			return shared.NewDomainError("RETURN_EXISTS", "A return has already been requested for this order")
		}
	}

	o.ReturnStatus = status
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// HasReturn reports whether a return has been requested for this order
func (o *Order) HasReturn() bool {
	return o.ReturnStatus != "" && o.ReturnStatus != ReturnMirrorNone
}

// ReturnEligible reports whether a return may still be requested at the
// given instant. Orders without a delivery date are never eligible.
func (o *Order) ReturnEligible(now time.Time, window time.Duration) bool {
	if o.DeliveryDate == nil {
		return false
	}
	return now.Before(o.DeliveryDate.Add(window))
}

// GetItem returns the order item with the given ID
func (o *Order) GetItem(itemID uuid.UUID) (*OrderItem, bool) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i], true
		}
	}
	return nil, false
}

// IsDelivered reports whether the order has been delivered
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

// IsCancelled reports whether the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}
