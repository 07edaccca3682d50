package order

import (
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DefaultReturnWindow is how long after delivery a return may be requested
const DefaultReturnWindow = 72 * time.Hour

// ReturnRequestStatus represents the status of a return request
type ReturnRequestStatus string

const (
	ReturnStatusPendingReview ReturnRequestStatus = "pending-review"
	ReturnStatusApproved      ReturnRequestStatus = "approved"
	ReturnStatusRejected      ReturnRequestStatus = "rejected"
	ReturnStatusRefunded      ReturnRequestStatus = "refunded"
)

// IsValid checks if the status is valid
func (s ReturnRequestStatus) IsValid() bool {
	switch s {
	case ReturnStatusPendingReview, ReturnStatusApproved, ReturnStatusRejected, ReturnStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation
func (s ReturnRequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if transition to target status is allowed.
// Rejected and refunded are terminal; approved only moves to refunded.
func (s ReturnRequestStatus) CanTransitionTo(target ReturnRequestStatus) bool {
	transitions := map[ReturnRequestStatus][]ReturnRequestStatus{
		ReturnStatusPendingReview: {ReturnStatusApproved, ReturnStatusRejected},
		ReturnStatusApproved:      {ReturnStatusRefunded},
		ReturnStatusRejected:      {},
		ReturnStatusRefunded:      {},
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

// MirrorStatus maps a return request status onto the order's mirror field
func (s ReturnRequestStatus) MirrorStatus() ReturnMirrorStatus {
	switch s {
	case ReturnStatusPendingReview:
		return ReturnMirrorRequested
	case ReturnStatusApproved:
		return ReturnMirrorApproved
	case ReturnStatusRejected:
		return ReturnMirrorRejected
	case ReturnStatusRefunded:
		return ReturnMirrorRefunded
	}
	return ReturnMirrorNone
}

// Return reason codes
const (
	ReasonDamaged        = "damaged"
	ReasonWrongItem      = "wrong-item"
	ReasonNotAsDescribed = "not-as-described"
	ReasonQualityIssue   = "quality-issue"
	ReasonOther          = "other"
)

// ValidReasonCode reports whether the reason code is known
func ValidReasonCode(code string) bool {
	switch code {
	case ReasonDamaged, ReasonWrongItem, ReasonNotAsDescribed, ReasonQualityIssue, ReasonOther:
		return true
	}
	return false
}

// ReturnItem references an order item included in a return, with a snapshot
// of the product name for the admin review screen
type ReturnItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReturnRequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderItemID     uuid.UUID `gorm:"type:uuid;not null"`
	ProductName     string    `gorm:"type:varchar(200);not null"`
	Quantity        int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ReturnItem) TableName() string {
	return "return_items"
}

// ReturnRequest is the aggregate root for the post-delivery return workflow.
// Its status is mirrored onto the owning order in the same transaction.
type ReturnRequest struct {
	shared.BaseAggregateRoot
	ReturnNumber    string              `gorm:"type:varchar(30);not null;uniqueIndex"`
	OrderID         uuid.UUID           `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Status          ReturnRequestStatus `gorm:"type:varchar(20);not null;index"`
	Items           []ReturnItem        `gorm:"foreignKey:ReturnRequestID;constraint:OnDelete:CASCADE"`
	ReasonCode      string              `gorm:"type:varchar(50);not null"`
	Comments        string              `gorm:"type:text"`
	DamageImageURLs string              `gorm:"type:jsonb"` // JSON array of image URLs
	ReviewedBy      *uuid.UUID          `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RefundedAt      *time.Time
	RejectionReason string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReturnRequest) TableName() string {
	return "return_requests"
}

// NewReturnRequest creates a return for the given order. All preconditions
// are checked here before any write is attempted: the order is delivered,
// no return exists yet, the window is still open, at least one item is
// selected and each selected item belongs to the order.
func NewReturnRequest(o *Order, orderItemIDs []uuid.UUID, reasonCode, comments, damageImageURLs string, now time.Time, window time.Duration) (*ReturnRequest, error) {
	if o == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order is required")
	}
	if !o.IsDelivered() {
		return nil, shared.NewDomainError("INVALID_STATE", "Returns can only be requested for delivered orders")
	}
	if o.HasReturn() {
		return nil, shared.NewDomainError("RETURN_EXISTS", "A return has already been requested for this order")
	}
	if !o.ReturnEligible(now, window) {
		return nil, shared.NewDomainError("RETURN_WINDOW_CLOSED", "The return window for this order has closed")
	}
	if len(orderItemIDs) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Select at least one item to return")
	}
	if !ValidReasonCode(reasonCode) {
		return nil, shared.NewDomainError("INVALID_REASON", "A valid return reason is required")
	}

	r := &ReturnRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           o.ID,
		UserID:            o.UserID,
		Status:            ReturnStatusPendingReview,
		ReasonCode:        reasonCode,
		Comments:          strings.TrimSpace(comments),
		DamageImageURLs:   damageImageURLs,
	}
	if r.DamageImageURLs == "" {
		r.DamageImageURLs = "[]"
	}

	seen := make(map[uuid.UUID]bool, len(orderItemIDs))
	for _, itemID := range orderItemIDs {
		if seen[itemID] {
			continue
		}
		seen[itemID] = true

		item, ok := o.GetItem(itemID)
		if !ok {
			return nil, shared.NewDomainError("INVALID_INPUT", "Selected item does not belong to this order")
		}
		r.Items = append(r.Items, ReturnItem{
			ID:              uuid.New(),
			ReturnRequestID: r.ID,
			OrderItemID:     item.ID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
		})
	}

	r.AddDomainEvent(NewReturnRequestedEvent(r))

	return r, nil
}

// Approve moves the return to approved
func (r *ReturnRequest) Approve(reviewerID uuid.UUID) error {
	if !r.Status.CanTransitionTo(ReturnStatusApproved) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot approve return in status: "+r.Status.String())
	}

	now := time.Now()
	r.Status = ReturnStatusApproved
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReturnReviewedEvent(r, reviewerID))

	return nil
}

// Reject moves the return to rejected, recording the reason
func (r *ReturnRequest) Reject(reviewerID uuid.UUID, reason string) error {
	if !r.Status.CanTransitionTo(ReturnStatusRejected) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot reject return in status: "+r.Status.String())
	}
	if strings.TrimSpace(reason) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Rejection reason is required")
	}

	now := time.Now()
	r.Status = ReturnStatusRejected
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.RejectionReason = strings.TrimSpace(reason)
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReturnReviewedEvent(r, reviewerID))

	return nil
}

// MarkRefunded records that the refund for an approved return was issued
func (r *ReturnRequest) MarkRefunded(reviewerID uuid.UUID) error {
	if !r.Status.CanTransitionTo(ReturnStatusRefunded) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot refund return in status: "+r.Status.String())
	}

	now := time.Now()
	r.Status = ReturnStatusRefunded
	r.RefundedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewReturnReviewedEvent(r, reviewerID))

	return nil
}
