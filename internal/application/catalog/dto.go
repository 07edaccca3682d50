package catalog

import (
	"time"

	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the admin payload for creating a product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Category    string           `json:"category" binding:"required,max=100"`
	Material    string           `json:"material" binding:"max=100"`
	Description string           `json:"description"`
	BaseMRP     string           `json:"base_mrp"`
	ImageURLs   string           `json:"image_urls"`
	Variants    []VariantRequest `json:"variants" binding:"dive"`
}

// UpdateProductRequest is the admin payload for updating a product
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Category    string `json:"category" binding:"required,max=100"`
	Material    string `json:"material" binding:"max=100"`
	Description string `json:"description"`
	ImageURLs   string `json:"image_urls"`
}

// VariantRequest is one size/price pair; list order fixes display order
type VariantRequest struct {
	Size  string `json:"size" binding:"required,max=50"`
	Price string `json:"price" binding:"required"`
}

// ReplaceVariantsRequest replaces the product's full variant list
type ReplaceVariantsRequest struct {
	Variants []VariantRequest `json:"variants" binding:"dive"`
}

// SetStockRequest flips the coarse stock flag
type SetStockRequest struct {
	InStock *bool `json:"in_stock" binding:"required"`
}

// SetPriceRequest updates the flat base price
type SetPriceRequest struct {
	BaseMRP string `json:"base_mrp" binding:"required"`
}

// ListProductsRequest carries storefront and back-office listing filters
type ListProductsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Category string `form:"category"`
	Material string `form:"material"`
	InStock  *bool  `form:"in_stock"`
	Search   string `form:"search"`
}

// VariantResponse is the API representation of a product variant
type VariantResponse struct {
	ID    uuid.UUID       `json:"id"`
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse is the API representation of a product. DisplayPrice is
// the resolved storefront price: first variant when variants exist, the
// flat base MRP otherwise.
type ProductResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	Material     string            `json:"material,omitempty"`
	Description  string            `json:"description,omitempty"`
	ImageURLs    string            `json:"image_urls"`
	InStock      bool              `json:"in_stock"`
	BaseMRP      decimal.Decimal   `json:"base_mrp"`
	DisplayPrice decimal.Decimal   `json:"display_price"`
	Variants     []VariantResponse `json:"variants"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToProductResponse maps a domain product to its API representation
func ToProductResponse(p *catalog.Product) *ProductResponse {
	variants := make([]VariantResponse, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, VariantResponse{
			ID:    v.ID,
			Size:  v.Size,
			Price: v.Price,
		})
	}

	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Material:     p.Material,
		Description:  p.Description,
		ImageURLs:    p.ImageURLs,
		InStock:      p.InStock,
		BaseMRP:      p.BaseMRP,
		DisplayPrice: p.PriceOf("").Amount(),
		Variants:     variants,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
