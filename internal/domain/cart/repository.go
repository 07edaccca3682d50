package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for cart line persistence
type Repository interface {
	// FindByUser returns every cart line owned by the user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*CartLine, error)

	// FindByIDForUser finds a single line scoped to its owner
	FindByIDForUser(ctx context.Context, userID, lineID uuid.UUID) (*CartLine, error)

	// FindLine finds the line keyed by (user, product, size), if any
	FindLine(ctx context.Context, userID, productID uuid.UUID, selectedSize string) (*CartLine, error)

	// Save inserts or updates a single line
	Save(ctx context.Context, line *CartLine) error

	// Delete removes a single line
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every line owned by the user (checkout clears the cart)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error

	// ApplyMerge applies a merge plan atomically: all updates, inserts and
	// deletions commit in one transaction or not at all
	ApplyMerge(ctx context.Context, plan *MergePlan) error
}
