package cache

import (
	"context"
	"testing"
	"time"

	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProductRepository records how often each method is hit.
type countingProductRepository struct {
	products map[uuid.UUID]*catalog.Product
	findByID int
	saves    int
	deletes  int
}

func newCountingProductRepository() *countingProductRepository {
	return &countingProductRepository{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *countingProductRepository) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	r.findByID++
	p, ok := r.products[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *countingProductRepository) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Product, error) {
	result := make([]catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *countingProductRepository) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *countingProductRepository) Save(_ context.Context, p *catalog.Product) error {
	r.saves++
	r.products[p.ID] = p
	return nil
}

func (r *countingProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deletes++
	delete(r.products, id)
	return nil
}

func newCachedRepo(t *testing.T) (*CachedProductRepository, *countingProductRepository, *catalog.Product) {
	t.Helper()

	inner := newCountingProductRepository()
	p, err := catalog.NewProduct("Clay Diya Set", "pottery", "terracotta", decimal.NewFromInt(450))
	require.NoError(t, err)
	require.NoError(t, inner.Save(context.Background(), p))
	inner.saves = 0

	return NewCachedProductRepository(inner, NewInMemoryProductCache(), time.Minute, nil), inner, p
}

func TestCachedProductRepository_FindByID_ReadThrough(t *testing.T) {
	repo, inner, p := newCachedRepo(t)
	ctx := context.Background()

	first, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, first.ID)
	assert.Equal(t, 1, inner.findByID)

	second, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, second.Name)
	assert.Equal(t, 1, inner.findByID, "second read is served from cache")
}

func TestCachedProductRepository_FindByID_MissPropagates(t *testing.T) {
	repo, _, _ := newCachedRepo(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCachedProductRepository_SaveInvalidates(t *testing.T) {
	repo, inner, p := newCachedRepo(t)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	p.Name = "Clay Diya Set (large)"
	require.NoError(t, repo.Save(ctx, p))
	assert.Equal(t, 1, inner.saves)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Clay Diya Set (large)", found.Name)
	assert.Equal(t, 2, inner.findByID, "stale entry was dropped on save")
}

func TestCachedProductRepository_DeleteInvalidates(t *testing.T) {
	repo, inner, p := newCachedRepo(t)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.Equal(t, 1, inner.deletes)

	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound, "cached copy does not outlive the row")
}

func TestInMemoryProductCache_TTL(t *testing.T) {
	c := NewInMemoryProductCache()
	ctx := context.Background()

	p, err := catalog.NewProduct("Jute Basket", "weaving", "jute", decimal.NewFromInt(200))
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, p, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	cached, err := c.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, cached, "expired entries read as misses")
}
