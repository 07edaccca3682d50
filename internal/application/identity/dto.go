package identity

import (
	"time"

	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterRequest is the payload for creating a permanent account.
// AnonymousUserID, when present, triggers the cart merge before the
// response is returned.
type RegisterRequest struct {
	Email           string     `json:"email" binding:"required,email"`
	Password        string     `json:"password" binding:"required,min=8"`
	DisplayName     string     `json:"display_name" binding:"max=100"`
	AnonymousUserID *uuid.UUID `json:"anonymous_user_id,omitempty" binding:"omitempty"`
}

// LoginRequest is the payload for signing in
type LoginRequest struct {
	Email           string     `json:"email" binding:"required,email"`
	Password        string     `json:"password" binding:"required"`
	AnonymousUserID *uuid.UUID `json:"anonymous_user_id,omitempty" binding:"omitempty"`
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=20"`
}

// ListUsersRequest carries admin listing parameters
type ListUsersRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	Role      string `form:"role" binding:"omitempty,oneof=user admin"`
	Anonymous *bool  `form:"anonymous"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	IsAnonymous bool       `json:"is_anonymous"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToUserResponse maps a domain user to its API representation
func ToUserResponse(u *identity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		Role:        string(u.Role),
		IsAnonymous: u.IsAnonymous,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// CreateAddressRequest is the payload for adding a shipping address
type CreateAddressRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Line1    string `json:"line1" binding:"required,max=200"`
	Line2    string `json:"line2" binding:"max=200"`
	City     string `json:"city" binding:"required,max=100"`
	State    string `json:"state" binding:"required,max=100"`
	Pincode  string `json:"pincode" binding:"required,pincode"`
	Phone    string `json:"phone" binding:"required,max=20"`
}

// UpdateAddressRequest mirrors CreateAddressRequest for full replacement
type UpdateAddressRequest = CreateAddressRequest

// AddressResponse is the API representation of an address
type AddressResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Phone     string    `json:"phone"`
	IsDefault bool      `json:"is_default"`
}

// ToAddressResponse maps a domain address to its API representation
func ToAddressResponse(a *identity.Address) *AddressResponse {
	return &AddressResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Line1:     a.Line1,
		Line2:     a.Line2,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		Phone:     a.Phone,
		IsDefault: a.IsDefault,
	}
}
