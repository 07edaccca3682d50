package order

import (
	"time"

	"github.com/craftkart/backend/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutRequest converts the caller's cart into an order
type CheckoutRequest struct {
	AddressID     uuid.UUID `json:"address_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=cod upi-full upi-partial"`
}

// CancelOrderRequest carries an optional cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ListOrdersRequest carries back-office order listing filters
type ListOrdersRequest struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
	Status       string `form:"status"`
	ReturnStatus string `form:"return_status"`
	UserID       string `form:"user_id"`
}

// ListReturnsRequest carries back-office return listing filters
type ListReturnsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// CreateReturnRequest opens a return for a delivered order
type CreateReturnRequest struct {
	OrderID         uuid.UUID   `json:"order_id" binding:"required"`
	OrderItemIDs    []uuid.UUID `json:"order_item_ids" binding:"required,min=1"`
	ReasonCode      string      `json:"reason_code" binding:"required"`
	Comments        string      `json:"comments" binding:"max=2000"`
	DamageImageURLs string      `json:"damage_image_urls"`
}

// RejectReturnRequest carries the mandatory rejection reason
type RejectReturnRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

// OrderItemResponse is the API representation of an order item snapshot
type OrderItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image,omitempty"`
	Size         string          `json:"size,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID              uuid.UUID             `json:"id"`
	OrderNumber     string                `json:"order_number"`
	UserID          uuid.UUID             `json:"user_id"`
	Status          string                `json:"status"`
	ReturnStatus    string                `json:"return_status"`
	Items           []OrderItemResponse   `json:"items"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	ShippingFee     decimal.Decimal       `json:"shipping_fee"`
	Tax             decimal.Decimal       `json:"tax"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	PaymentMethod   string                `json:"payment_method"`
	PaymentDetails  order.PaymentDetails  `json:"payment_details"`
	ShippingAddress order.ShippingAddress `json:"shipping_address"`

	PaymentApprovedAt *time.Time `json:"payment_approved_at,omitempty"`
	ShippedAt         *time.Time `json:"shipped_at,omitempty"`
	DeliveryDate      *time.Time `json:"delivery_date,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// ReturnItemResponse is the API representation of a returned item
type ReturnItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderItemID uuid.UUID `json:"order_item_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
}

// ReturnResponse is the API representation of a return request
type ReturnResponse struct {
	ID              uuid.UUID            `json:"id"`
	ReturnNumber    string               `json:"return_number"`
	OrderID         uuid.UUID            `json:"order_id"`
	UserID          uuid.UUID            `json:"user_id"`
	Status          string               `json:"status"`
	Items           []ReturnItemResponse `json:"items"`
	ReasonCode      string               `json:"reason_code"`
	Comments        string               `json:"comments,omitempty"`
	DamageImageURLs string               `json:"damage_image_urls"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time           `json:"reviewed_at,omitempty"`
	RefundedAt      *time.Time           `json:"refunded_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ToOrderResponse maps a domain order to its API representation
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Size:         item.Size,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			LineTotal:    item.LineTotal,
		})
	}

	return &OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		UserID:            o.UserID,
		Status:            o.Status.String(),
		ReturnStatus:      string(o.ReturnStatus),
		Items:             items,
		Subtotal:          o.Subtotal,
		ShippingFee:       o.ShippingFee,
		Tax:               o.Tax,
		TotalAmount:       o.TotalAmount,
		PaymentMethod:     string(o.PaymentMethod),
		PaymentDetails:    o.PaymentDetails,
		ShippingAddress:   o.ShippingAddress,
		PaymentApprovedAt: o.PaymentApprovedAt,
		ShippedAt:         o.ShippedAt,
		DeliveryDate:      o.DeliveryDate,
		CancelledAt:       o.CancelledAt,
		CreatedAt:         o.CreatedAt,
	}
}

// ToReturnResponse maps a domain return request to its API representation
func ToReturnResponse(r *order.ReturnRequest) *ReturnResponse {
	items := make([]ReturnItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, ReturnItemResponse{
			ID:          item.ID,
			OrderItemID: item.OrderItemID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return &ReturnResponse{
		ID:              r.ID,
		ReturnNumber:    r.ReturnNumber,
		OrderID:         r.OrderID,
		UserID:          r.UserID,
		Status:          r.Status.String(),
		Items:           items,
		ReasonCode:      r.ReasonCode,
		Comments:        r.Comments,
		DamageImageURLs: r.DamageImageURLs,
		RejectionReason: r.RejectionReason,
		ReviewedAt:      r.ReviewedAt,
		RefundedAt:      r.RefundedAt,
		CreatedAt:       r.CreatedAt,
	}
}
