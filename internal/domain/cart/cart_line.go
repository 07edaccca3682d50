package cart

import (
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CartLine is a single product line in a user's cart, keyed by
// (user, product, selected size). Cart lines are deliberately version-free:
// concurrent writes to the same line are last-write-wins.
type CartLine struct {
	shared.BaseEntity
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SelectedSize string    `gorm:"type:varchar(50);not null;default:''"`
	Quantity     int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartLine) TableName() string {
	return "cart_lines"
}

// NewCartLine creates a new cart line with quantity 1
func NewCartLine(userID, productID uuid.UUID, selectedSize string) (*CartLine, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product ID is required")
	}

	return &CartLine{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		ProductID:    productID,
		SelectedSize: selectedSize,
		Quantity:     1,
	}, nil
}

// Matches reports whether the line is keyed by the given product and size
func (l *CartLine) Matches(productID uuid.UUID, selectedSize string) bool {
	return l.ProductID == productID && l.SelectedSize == selectedSize
}

// ChangeQuantity sets the line quantity. Quantities below one are invalid
// here; callers wanting removal delete the line instead.
func (l *CartLine) ChangeQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	l.Quantity = quantity
	l.UpdatedAt = time.Now()
	return nil
}

// Increment adds one to the line quantity
func (l *CartLine) Increment() {
	l.Quantity++
	l.UpdatedAt = time.Now()
}
