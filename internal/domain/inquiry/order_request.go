package inquiry

import (
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestStatus represents the status of a bulk/custom order request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid checks if the status is valid
func (s RequestStatus) IsValid() bool {
	return s == RequestStatusPending || s == RequestStatusApproved || s == RequestStatusRejected
}

// String returns the string representation
func (s RequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if transition to target status is allowed
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if s != RequestStatusPending {
		return false
	}
	return target == RequestStatusApproved || target == RequestStatusRejected
}

// MaterialLine is one requested material with optional customization
type MaterialLine struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderRequestID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MaterialName      string    `gorm:"type:varchar(200);not null"`
	Quantity          int       `gorm:"not null"`
	Customization     string    `gorm:"type:text"`
	ReferenceImageURL string    `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (MaterialLine) TableName() string {
	return "order_request_materials"
}

// OrderRequest is a customer-submitted bulk or customization inquiry. It is
// not tied to a cart; the admin note is editable at any time regardless of
// status, while status transitions themselves are admin-only and one-shot.
type OrderRequest struct {
	shared.BaseAggregateRoot
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	ContactName  string         `gorm:"type:varchar(100);not null"`
	ContactEmail string         `gorm:"type:varchar(255);not null"`
	ContactPhone string         `gorm:"type:varchar(20)"`
	Message      string         `gorm:"type:text"`
	Status       RequestStatus  `gorm:"type:varchar(20);not null;index"`
	AdminNote    string         `gorm:"type:text"`
	Materials    []MaterialLine `gorm:"foreignKey:OrderRequestID;constraint:OnDelete:CASCADE"`
	DecidedBy    *uuid.UUID     `gorm:"type:uuid"`
	DecidedAt    *time.Time
}

// TableName returns the table name for GORM
func (OrderRequest) TableName() string {
	return "order_requests"
}

// MaterialInput carries one material line for request creation
type MaterialInput struct {
	MaterialName      string
	Quantity          int
	Customization     string
	ReferenceImageURL string
}

// NewOrderRequest creates a new bulk/custom inquiry
func NewOrderRequest(userID uuid.UUID, contactName, contactEmail, contactPhone, message string, materials []MaterialInput) (*OrderRequest, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if strings.TrimSpace(contactName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Contact name is required")
	}
	if strings.TrimSpace(contactEmail) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Contact email is required")
	}
	if len(materials) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one material line is required")
	}

	r := &OrderRequest{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ContactName:       strings.TrimSpace(contactName),
		ContactEmail:      strings.ToLower(strings.TrimSpace(contactEmail)),
		ContactPhone:      strings.TrimSpace(contactPhone),
		Message:           strings.TrimSpace(message),
		Status:            RequestStatusPending,
	}

	for _, m := range materials {
		if strings.TrimSpace(m.MaterialName) == "" {
			return nil, shared.NewDomainError("INVALID_INPUT", "Material name is required")
		}
		if m.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Material quantity must be at least 1")
		}
		r.Materials = append(r.Materials, MaterialLine{
			ID:                uuid.New(),
			OrderRequestID:    r.ID,
			MaterialName:      strings.TrimSpace(m.MaterialName),
			Quantity:          m.Quantity,
			Customization:     strings.TrimSpace(m.Customization),
			ReferenceImageURL: strings.TrimSpace(m.ReferenceImageURL),
		})
	}

	r.AddDomainEvent(NewOrderRequestSubmittedEvent(r))

	return r, nil
}

// Approve marks the request approved
func (r *OrderRequest) Approve(adminID uuid.UUID) error {
	return r.decide(adminID, RequestStatusApproved)
}

// Reject marks the request rejected
func (r *OrderRequest) Reject(adminID uuid.UUID) error {
	return r.decide(adminID, RequestStatusRejected)
}

func (r *OrderRequest) decide(adminID uuid.UUID, target RequestStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move request from "+r.Status.String()+" to "+target.String())
	}

	now := time.Now()
	r.Status = target
	r.DecidedBy = &adminID
	r.DecidedAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewOrderRequestDecidedEvent(r))

	return nil
}

// SetAdminNote updates the admin note, allowed in any status
func (r *OrderRequest) SetAdminNote(note string) {
	r.AdminNote = strings.TrimSpace(note)
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
