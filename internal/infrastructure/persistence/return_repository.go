package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReturnRepository implements order.ReturnRequestRepository using GORM
type GormReturnRepository struct {
	db *gorm.DB
}

// NewGormReturnRepository creates a new GormReturnRepository
func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

// FindByID finds a return request by ID with items preloaded
func (r *GormReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.ReturnRequest, error) {
	var ret order.ReturnRequest
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&ret, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// FindByOrder returns the returns attached to an order
func (r *GormReturnRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]order.ReturnRequest, error) {
	var returns []order.ReturnRequest
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// FindByUser returns the user's return requests, newest first
func (r *GormReturnRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]order.ReturnRequest, error) {
	var returns []order.ReturnRequest
	query := applyPaging(r.db.WithContext(ctx).Model(&order.ReturnRequest{}).Where("user_id = ?", userID), filter).
		Preload("Items")
	if err := query.Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// FindAll finds return requests matching the filter
func (r *GormReturnRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.ReturnRequest, error) {
	var returns []order.ReturnRequest
	query := applyPaging(r.applyFilter(r.db.WithContext(ctx).Model(&order.ReturnRequest{}), filter), filter).
		Preload("Items")
	if err := query.Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}

// Count counts return requests matching the filter
func (r *GormReturnRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&order.ReturnRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveWithOrderMirror persists the return request and the owning order's
// return status mirror in one transaction. The order write is version
// checked; a concurrent order mutation aborts the whole save.
func (r *GormReturnRepository) SaveWithOrderMirror(ctx context.Context, ret *order.ReturnRequest, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(ret).Error; err != nil {
			return err
		}
		for i := range ret.Items {
			if err := tx.Save(&ret.Items[i]).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&order.Order{}).
			Where("id = ? AND version = ?", o.ID, o.Version-1).
			Updates(map[string]interface{}{
				"return_status": o.ReturnStatus,
				"updated_at":    o.UpdatedAt,
				"version":       o.Version,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// GenerateReturnNumber generates the next return number in the RR-YYYY-NNNNN
// sequence, counting within the current year
func (r *GormReturnRepository) GenerateReturnNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("RR-%d-", year)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.ReturnRequest{}).
		Where("return_number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

func (r *GormReturnRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		}
	}
	return query
}

var _ order.ReturnRequestRepository = (*GormReturnRepository)(nil)
