package catalog

import (
	"context"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID, variants preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll finds all products matching the filter
	// Supported filter keys: category, material, in_stock
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists a product and its variants
	Save(ctx context.Context, product *Product) error

	// Delete removes a product and its variants
	Delete(ctx context.Context, id uuid.UUID) error
}
