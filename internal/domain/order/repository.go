package order

import (
	"context"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by ID, items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDForUser finds an order scoped to its owner
	FindByIDForUser(ctx context.Context, userID, orderID uuid.UUID) (*Order, error)

	// FindByUser returns the user's orders, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)

	// FindAll finds orders matching the filter
	// Supported filter keys: status, user_id, return_status
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists an order and its items
	Save(ctx context.Context, o *Order) error

	// SaveWithLock persists status fields with optimistic locking
	SaveWithLock(ctx context.Context, o *Order) error

	// GenerateOrderNumber generates the next order number, OD-YYYY-NNNNN
	GenerateOrderNumber(ctx context.Context) (string, error)
}

// ReturnRequestRepository defines the interface for return persistence
type ReturnRequestRepository interface {
	// FindByID finds a return request by ID, items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*ReturnRequest, error)

	// FindByOrder returns the returns attached to an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ReturnRequest, error)

	// FindByUser returns the user's return requests, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ReturnRequest, error)

	// FindAll finds return requests matching the filter
	// Supported filter keys: status, user_id
	FindAll(ctx context.Context, filter shared.Filter) ([]ReturnRequest, error)

	// Count counts return requests matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// SaveWithOrderMirror persists the return request and the owning order's
	// returnStatus mirror in a single transaction. No reader may observe one
	// document updated without the other.
	SaveWithOrderMirror(ctx context.Context, r *ReturnRequest, o *Order) error

	// GenerateReturnNumber generates the next return number, RR-YYYY-NNNNN
	GenerateReturnNumber(ctx context.Context) (string, error)
}
