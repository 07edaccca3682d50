package persistence

import (
	"testing"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/content"
	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/order"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// Postgres-only paths (ILIKE search) are covered by sqlmock tests instead.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&identity.User{},
		&identity.Address{},
		&catalog.Product{},
		&catalog.ProductVariant{},
		&cart.CartLine{},
		&order.Order{},
		&order.OrderItem{},
		&order.ReturnRequest{},
		&order.ReturnItem{},
		&inquiry.OrderRequest{},
		&inquiry.MaterialLine{},
		&content.BlogPost{},
		&content.TeamMember{},
		&content.Store{},
		&content.HeroImage{},
	))
	return db
}
