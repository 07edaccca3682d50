package inquiry

import (
	"time"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/google/uuid"
)

// MaterialLineRequest is one requested material in an inquiry
type MaterialLineRequest struct {
	MaterialName      string `json:"material_name" binding:"required,max=200"`
	Quantity          int    `json:"quantity" binding:"required,min=1"`
	Customization     string `json:"customization" binding:"max=2000"`
	ReferenceImageURL string `json:"reference_image_url" binding:"max=500"`
}

// SubmitRequestRequest is the payload for a bulk/custom order inquiry
type SubmitRequestRequest struct {
	ContactName  string                `json:"contact_name" binding:"required,max=100"`
	ContactEmail string                `json:"contact_email" binding:"required,email"`
	ContactPhone string                `json:"contact_phone" binding:"max=20"`
	Message      string                `json:"message" binding:"max=5000"`
	Materials    []MaterialLineRequest `json:"materials" binding:"required,min=1,dive"`
}

// SetAdminNoteRequest updates the internal note on a request
type SetAdminNoteRequest struct {
	Note string `json:"note" binding:"max=5000"`
}

// ListRequestsRequest carries back-office listing filters
type ListRequestsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Status   string `form:"status"`
}

// MaterialLineResponse is the API representation of a material line
type MaterialLineResponse struct {
	ID                uuid.UUID `json:"id"`
	MaterialName      string    `json:"material_name"`
	Quantity          int       `json:"quantity"`
	Customization     string    `json:"customization,omitempty"`
	ReferenceImageURL string    `json:"reference_image_url,omitempty"`
}

// RequestResponse is the API representation of an order request
type RequestResponse struct {
	ID           uuid.UUID              `json:"id"`
	UserID       uuid.UUID              `json:"user_id"`
	ContactName  string                 `json:"contact_name"`
	ContactEmail string                 `json:"contact_email"`
	ContactPhone string                 `json:"contact_phone,omitempty"`
	Message      string                 `json:"message,omitempty"`
	Status       string                 `json:"status"`
	AdminNote    string                 `json:"admin_note,omitempty"`
	Materials    []MaterialLineResponse `json:"materials"`
	DecidedAt    *time.Time             `json:"decided_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ToRequestResponse maps a domain order request to its API representation
func ToRequestResponse(r *inquiry.OrderRequest) *RequestResponse {
	materials := make([]MaterialLineResponse, 0, len(r.Materials))
	for _, m := range r.Materials {
		materials = append(materials, MaterialLineResponse{
			ID:                m.ID,
			MaterialName:      m.MaterialName,
			Quantity:          m.Quantity,
			Customization:     m.Customization,
			ReferenceImageURL: m.ReferenceImageURL,
		})
	}

	return &RequestResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Message:      r.Message,
		Status:       r.Status.String(),
		AdminNote:    r.AdminNote,
		Materials:    materials,
		DecidedAt:    r.DecidedAt,
		CreatedAt:    r.CreatedAt,
	}
}
