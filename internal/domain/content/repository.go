package content

import (
	"context"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BlogRepository defines the interface for blog post persistence
type BlogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*BlogPost, error)
	// FindAll supports the published filter key
	FindAll(ctx context.Context, filter shared.Filter) ([]BlogPost, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, post *BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamRepository defines the interface for team member persistence
type TeamRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TeamMember, error)
	FindAll(ctx context.Context) ([]TeamMember, error)
	Save(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StoreRepository defines the interface for store location persistence
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	FindAll(ctx context.Context) ([]Store, error)
	Save(ctx context.Context, store *Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HeroRepository defines the interface for hero image persistence
type HeroRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HeroImage, error)
	// FindActive returns active hero images ordered by position
	FindActive(ctx context.Context) ([]HeroImage, error)
	FindAll(ctx context.Context) ([]HeroImage, error)
	Save(ctx context.Context, image *HeroImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}
