package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

var pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// Address is a shipping address owned by a user. At most one address per
// user carries IsDefault; the repository enforces exclusivity in a single
// transaction when the default changes.
type Address struct {
	shared.BaseEntity
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Line1     string    `gorm:"type:varchar(200);not null"`
	Line2     string    `gorm:"type:varchar(200)"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(100);not null"`
	Pincode   string    `gorm:"type:varchar(6);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new shipping address
func NewAddress(userID uuid.UUID, fullName, line1, line2, city, state, pincode, phone string) (*Address, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Full name is required")
	}
	if strings.TrimSpace(line1) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Address line is required")
	}
	if strings.TrimSpace(city) == "" || strings.TrimSpace(state) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "City and state are required")
	}
	if !pincodeRegex.MatchString(pincode) {
		return nil, shared.NewDomainError("INVALID_PINCODE", "Pincode must be a 6-digit postal code")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Phone is required")
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		FullName:   strings.TrimSpace(fullName),
		Line1:      strings.TrimSpace(line1),
		Line2:      strings.TrimSpace(line2),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		Pincode:    pincode,
		Phone:      strings.TrimSpace(phone),
	}, nil
}

// Update replaces the address fields
func (a *Address) Update(fullName, line1, line2, city, state, pincode, phone string) error {
	updated, err := NewAddress(a.UserID, fullName, line1, line2, city, state, pincode, phone)
	if err != nil {
		return err
	}

	a.FullName = updated.FullName
	a.Line1 = updated.Line1
	a.Line2 = updated.Line2
	a.City = updated.City
	a.State = updated.State
	a.Pincode = updated.Pincode
	a.Phone = updated.Phone
	a.UpdatedAt = time.Now()

	return nil
}

// ValidPincode reports whether a string is a valid 6-digit postal code
func ValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}
