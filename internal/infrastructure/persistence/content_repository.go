package persistence

import (
	"context"
	"errors"

	"github.com/craftkart/backend/internal/domain/content"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBlogRepository implements content.BlogRepository using GORM
type GormBlogRepository struct {
	db *gorm.DB
}

// NewGormBlogRepository creates a new GormBlogRepository
func NewGormBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// FindByID finds a blog post by ID
func (r *GormBlogRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindBySlug finds a blog post by its slug
func (r *GormBlogRepository) FindBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	var post content.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindAll finds blog posts matching the filter
func (r *GormBlogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.BlogPost, error) {
	var posts []content.BlogPost
	query := applyPaging(r.applyFilter(r.db.WithContext(ctx).Model(&content.BlogPost{}), filter), filter)
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Count counts blog posts matching the filter
func (r *GormBlogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&content.BlogPost{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save persists a blog post
func (r *GormBlogRepository) Save(ctx context.Context, post *content.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes a blog post
func (r *GormBlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.BlogPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormBlogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ?", pattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "published":
			query = query.Where("published = ?", value)
		}
	}
	return query
}

// GormTeamRepository implements content.TeamRepository using GORM
type GormTeamRepository struct {
	db *gorm.DB
}

// NewGormTeamRepository creates a new GormTeamRepository
func NewGormTeamRepository(db *gorm.DB) *GormTeamRepository {
	return &GormTeamRepository{db: db}
}

// FindByID finds a team member by ID
func (r *GormTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.TeamMember, error) {
	var member content.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

// FindAll returns every team member in display order
func (r *GormTeamRepository) FindAll(ctx context.Context) ([]content.TeamMember, error) {
	var members []content.TeamMember
	if err := r.db.WithContext(ctx).Order("position ASC, created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Save persists a team member
func (r *GormTeamRepository) Save(ctx context.Context, member *content.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete removes a team member
func (r *GormTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormStoreRepository implements content.StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store location by ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Store, error) {
	var store content.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindAll returns every store location
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]content.Store, error) {
	var stores []content.Store
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Save persists a store location
func (r *GormStoreRepository) Save(ctx context.Context, store *content.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// Delete removes a store location
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormHeroRepository implements content.HeroRepository using GORM
type GormHeroRepository struct {
	db *gorm.DB
}

// NewGormHeroRepository creates a new GormHeroRepository
func NewGormHeroRepository(db *gorm.DB) *GormHeroRepository {
	return &GormHeroRepository{db: db}
}

// FindByID finds a hero image by ID
func (r *GormHeroRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.HeroImage, error) {
	var image content.HeroImage
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &image, nil
}

// FindActive returns active hero images ordered by position
func (r *GormHeroRepository) FindActive(ctx context.Context) ([]content.HeroImage, error) {
	var images []content.HeroImage
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// FindAll returns every hero image ordered by position
func (r *GormHeroRepository) FindAll(ctx context.Context) ([]content.HeroImage, error) {
	var images []content.HeroImage
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Save persists a hero image
func (r *GormHeroRepository) Save(ctx context.Context, image *content.HeroImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// Delete removes a hero image
func (r *GormHeroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.HeroImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var (
	_ content.BlogRepository  = (*GormBlogRepository)(nil)
	_ content.TeamRepository  = (*GormTeamRepository)(nil)
	_ content.StoreRepository = (*GormStoreRepository)(nil)
	_ content.HeroRepository  = (*GormHeroRepository)(nil)
)
