package persistence

import (
	"context"
	"errors"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements cart.Repository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUser returns every cart line owned by the user, oldest first so the
// cart renders in the order items were added
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*cart.CartLine, error) {
	var lines []*cart.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindByIDForUser finds a single line scoped to its owner
func (r *GormCartRepository) FindByIDForUser(ctx context.Context, userID, lineID uuid.UUID) (*cart.CartLine, error) {
	var line cart.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, lineID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindLine finds the line keyed by (user, product, size), if any
func (r *GormCartRepository) FindLine(ctx context.Context, userID, productID uuid.UUID, selectedSize string) (*cart.CartLine, error) {
	var line cart.CartLine
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND selected_size = ?", userID, productID, selectedSize).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Save inserts or updates a single line
func (r *GormCartRepository) Save(ctx context.Context, line *cart.CartLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// Delete removes a single line
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&cart.CartLine{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByUser removes every line owned by the user
func (r *GormCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&cart.CartLine{}, "user_id = ?", userID).Error
}

// ApplyMerge applies a merge plan atomically. A crash mid-merge must never
// leave lines duplicated between the anonymous and permanent carts.
func (r *GormCartRepository) ApplyMerge(ctx context.Context, plan *cart.MergePlan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, line := range plan.Updates {
			if err := tx.Save(line).Error; err != nil {
				return err
			}
		}
		if len(plan.Inserts) > 0 {
			if err := tx.Create(plan.Inserts).Error; err != nil {
				return err
			}
		}
		if len(plan.DeleteIDs) > 0 {
			if err := tx.Delete(&cart.CartLine{}, "id IN ?", plan.DeleteIDs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ cart.Repository = (*GormCartRepository)(nil)
