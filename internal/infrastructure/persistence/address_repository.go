package persistence

import (
	"context"
	"errors"

	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAddressRepository implements identity.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByUser returns every address owned by the user, default first
func (r *GormAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*identity.Address, error) {
	var addresses []*identity.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// FindByIDForUser finds an address scoped to its owner
func (r *GormAddressRepository) FindByIDForUser(ctx context.Context, userID, addressID uuid.UUID) (*identity.Address, error) {
	var address identity.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, addressID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// Save persists an address
func (r *GormAddressRepository) Save(ctx context.Context, address *identity.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

// Delete removes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.Address{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SetDefault marks the given address as the user's default. The unset of the
// previous default and the set of the new one commit together so a reader
// never sees zero or two defaults.
func (r *GormAddressRepository) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&identity.Address{}).
			Where("user_id = ? AND id = ?", userID, addressID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return tx.Model(&identity.Address{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_default", false).Error
	})
}

var _ identity.AddressRepository = (*GormAddressRepository)(nil)
