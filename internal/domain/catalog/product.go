package catalog

import (
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/craftkart/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a handicraft item in the catalog
// It is the aggregate root for catalog operations
type Product struct {
	shared.BaseAggregateRoot
	Name        string           `gorm:"type:varchar(200);not null;index"`
	Category    string           `gorm:"type:varchar(100);not null;index"`
	Material    string           `gorm:"type:varchar(100);index"`
	Description string           `gorm:"type:text"`
	ImageURLs   string           `gorm:"type:jsonb"` // JSON array of image URLs
	InStock     bool             `gorm:"not null;default:true"`
	BaseMRP     decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductVariant is a named size of a product carrying its own price
type ProductVariant struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Size      string          `gorm:"type:varchar(50);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Position  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// TableName returns the table name for GORM
func (ProductVariant) TableName() string {
	return "product_variants"
}

// NewProduct creates a new catalog product
func NewProduct(name, category, material string, baseMRP decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}
	if baseMRP.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base MRP cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		Material:          material,
		ImageURLs:         "[]",
		InStock:           true,
		BaseMRP:           baseMRP,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, category, material, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Product category cannot be empty")
	}

	p.Name = name
	p.Category = category
	p.Material = material
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetStock updates the coarse stock flag
func (p *Product) SetStock(inStock bool) {
	p.InStock = inStock
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))
}

// SetBaseMRP updates the flat price used when no variants exist
func (p *Product) SetBaseMRP(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Base MRP cannot be negative")
	}

	p.BaseMRP = price
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// VariantInput carries a size/price pair for variant replacement
type VariantInput struct {
	Size  string
	Price decimal.Decimal
}

// ReplaceVariants replaces the full variant list
// Variant positions follow the order given
func (p *Product) ReplaceVariants(variants []VariantInput) error {
	seen := make(map[string]bool, len(variants))
	replacement := make([]ProductVariant, 0, len(variants))

	for i, v := range variants {
		size := strings.TrimSpace(v.Size)
		if size == "" {
			return shared.NewDomainError("INVALID_VARIANT", "Variant size cannot be empty")
		}
		if seen[size] {
			return shared.NewDomainError("INVALID_VARIANT", "Duplicate variant size: "+size)
		}
		if v.Price.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Variant price cannot be negative")
		}
		seen[size] = true
		replacement = append(replacement, ProductVariant{
			ID:        uuid.New(),
			ProductID: p.ID,
			Size:      size,
			Price:     v.Price,
			Position:  i,
		})
	}

	p.Variants = replacement
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// HasVariants returns true if the product is sold in named sizes
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// VariantBySize returns the variant matching the given size
func (p *Product) VariantBySize(size string) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].Size == size {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// PriceOf resolves the display price for the given size selection.
// Products with variants resolve to the matching variant, falling back to the
// first variant when no size is given or the size does not match. Products
// without variants use the flat BaseMRP. Never errors; an unresolvable price
// is zero and callers must treat that as price unknown, not free.
func (p *Product) PriceOf(size string) valueobject.Money {
	if len(p.Variants) > 0 {
		if size != "" {
			if v, ok := p.VariantBySize(size); ok {
				return valueobject.NewMoneyINR(v.Price)
			}
		}
		first := p.Variants[0]
		for i := range p.Variants {
			if p.Variants[i].Position < first.Position {
				first = p.Variants[i]
			}
		}
		return valueobject.NewMoneyINR(first.Price)
	}
	if p.BaseMRP.IsPositive() {
		return valueobject.NewMoneyINR(p.BaseMRP)
	}
	return valueobject.ZeroINR()
}
