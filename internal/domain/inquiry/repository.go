package inquiry

import (
	"context"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for order request persistence
type Repository interface {
	// FindByID finds a request by ID, material lines preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*OrderRequest, error)

	// FindByUser returns the user's requests, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]OrderRequest, error)

	// FindAll finds requests matching the filter
	// Supported filter keys: status
	FindAll(ctx context.Context, filter shared.Filter) ([]OrderRequest, error)

	// Count counts requests matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists a request and its material lines
	Save(ctx context.Context, r *OrderRequest) error

	// Delete removes a request
	Delete(ctx context.Context, id uuid.UUID) error
}
