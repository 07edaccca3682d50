package persistence

import (
	"context"
	"errors"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInquiryRepository implements inquiry.Repository using GORM
type GormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GormInquiryRepository
func NewGormInquiryRepository(db *gorm.DB) *GormInquiryRepository {
	return &GormInquiryRepository{db: db}
}

// FindByID finds a request by ID with material lines preloaded
func (r *GormInquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.OrderRequest, error) {
	var request inquiry.OrderRequest
	if err := r.db.WithContext(ctx).
		Preload("Materials").
		First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

// FindByUser returns the user's requests, newest first
func (r *GormInquiryRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inquiry.OrderRequest, error) {
	var requests []inquiry.OrderRequest
	query := applyPaging(r.db.WithContext(ctx).Model(&inquiry.OrderRequest{}).Where("user_id = ?", userID), filter).
		Preload("Materials")
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// FindAll finds requests matching the filter
func (r *GormInquiryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inquiry.OrderRequest, error) {
	var requests []inquiry.OrderRequest
	query := applyPaging(r.applyFilter(r.db.WithContext(ctx).Model(&inquiry.OrderRequest{}), filter), filter).
		Preload("Materials")
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Count counts requests matching the filter
func (r *GormInquiryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inquiry.OrderRequest{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a request and its material lines together
func (r *GormInquiryRepository) Save(ctx context.Context, request *inquiry.OrderRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Materials").Save(request).Error; err != nil {
			return err
		}
		for i := range request.Materials {
			if err := tx.Save(&request.Materials[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a request; material lines cascade
func (r *GormInquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&inquiry.MaterialLine{}, "order_request_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&inquiry.OrderRequest{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormInquiryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}
	return query
}

var _ inquiry.Repository = (*GormInquiryRepository)(nil)
