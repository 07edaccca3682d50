package identity

import (
	"context"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a permanent user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll finds users matching the filter
	// Supported filter keys: role, is_anonymous
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// Count counts users matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save persists a user
	Save(ctx context.Context, user *User) error

	// Delete removes a user
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByUser returns every address owned by the user
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*Address, error)

	// FindByIDForUser finds an address scoped to its owner
	FindByIDForUser(ctx context.Context, userID, addressID uuid.UUID) (*Address, error)

	// Save persists an address
	Save(ctx context.Context, address *Address) error

	// Delete removes an address
	Delete(ctx context.Context, id uuid.UUID) error

	// SetDefault marks the given address as the user's default and unsets
	// every other default in the same transaction, so exactly one address
	// is the default once it returns
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error
}
