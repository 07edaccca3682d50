package cart

import (
	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddToCartRequest is the payload for add-or-increment
type AddToCartRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	SelectedSize string    `json:"selected_size" binding:"max=50"`
}

// SetQuantityRequest is the payload for the single quantity mutation
// primitive. Zero or negative removes the line.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse is the API representation of a cart line. Product fields
// are nil when the referenced product is missing from the catalog; clients
// render nothing for such lines.
type CartLineResponse struct {
	ID           uuid.UUID        `json:"id"`
	ProductID    uuid.UUID        `json:"product_id"`
	SelectedSize string           `json:"selected_size,omitempty"`
	Quantity     int              `json:"quantity"`
	Product      *ProductSnapshot `json:"product,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	LineTotal    *decimal.Decimal `json:"line_total,omitempty"`
}

// ProductSnapshot carries the catalog fields the cart page renders
type ProductSnapshot struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageURLs string `json:"image_urls"`
	InStock   bool   `json:"in_stock"`
}

// CartResponse is the full cart with a running total over priceable lines
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total decimal.Decimal    `json:"total"`
}

// MutationResponse wraps a cart mutation issued as a non-blocking write.
// Done reports the write outcome for callers that choose to await it; the
// HTTP layer ignores it and responds optimistically.
type MutationResponse struct {
	Line    *CartLineResponse `json:"line,omitempty"`
	Removed bool              `json:"removed"`
	Done    <-chan error      `json:"-"`
}

// ToCartLineResponse maps a line and its (possibly nil) product
func ToCartLineResponse(line *cart.CartLine, product *catalog.Product) CartLineResponse {
	resp := CartLineResponse{
		ID:           line.ID,
		ProductID:    line.ProductID,
		SelectedSize: line.SelectedSize,
		Quantity:     line.Quantity,
	}
	if product != nil {
		resp.Product = &ProductSnapshot{
			Name:      product.Name,
			Category:  product.Category,
			ImageURLs: product.ImageURLs,
			InStock:   product.InStock,
		}
		unit := product.PriceOf(line.SelectedSize).Amount()
		total := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		resp.UnitPrice = &unit
		resp.LineTotal = &total
	}
	return resp
}
