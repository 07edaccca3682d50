package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	appcart "github.com/craftkart/backend/internal/application/cart"
	appcatalog "github.com/craftkart/backend/internal/application/catalog"
	appidentity "github.com/craftkart/backend/internal/application/identity"
	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/content"
	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/infrastructure/auth"
	"github.com/craftkart/backend/internal/infrastructure/config"
	"github.com/craftkart/backend/internal/infrastructure/persistence"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/craftkart/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// syncDispatcher runs dispatched writes inline so tests observe their
// effect immediately
type syncDispatcher struct{}

func (syncDispatcher) Dispatch(name string, fn func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)
	done <- fn(context.Background())
	close(done)
	return done
}

// testEnv wires the auth, catalog and cart stacks over an in-memory
// SQLite database behind the real middleware chain.
type testEnv struct {
	engine     *gin.Engine
	jwtService *auth.JWTService
	blacklist  *auth.InMemoryTokenBlacklist
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

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

	jwtService := auth.NewJWTService(&config.JWTConfig{
		Secret:                 "handler-test-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "craftkart-test",
	})
	blacklist := auth.NewInMemoryTokenBlacklist()

	userRepo := persistence.NewGormUserRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	productRepo := persistence.NewGormProductRepository(db)

	authService := appidentity.NewAuthService(userRepo, cartRepo)
	productService := appcatalog.NewProductService(productRepo)
	cartService := appcart.NewService(cartRepo, productRepo, syncDispatcher{})

	engine := gin.New()
	jwtCfg := middleware.DefaultJWTConfig(jwtService)
	jwtCfg.TokenBlacklist = blacklist
	engine.Use(middleware.JWTAuth(jwtCfg))

	router.NewRouter(engine).
		Register(NewAuthHandler(authService, jwtService, blacklist)).
		Register(NewProductHandler(productService)).
		Register(NewCartHandler(cartService)).
		Setup()

	return &testEnv{engine: engine, jwtService: jwtService, blacklist: blacklist}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// adminToken mints a token carrying the admin role. Admin checks only
// read the claims, so the user row itself is not needed.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	pair, err := e.jwtService.GenerateTokenPair(uuid.New(), "admin", false)
	require.NoError(t, err)
	return pair.AccessToken
}
