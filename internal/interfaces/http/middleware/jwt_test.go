package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/craftkart/backend/internal/infrastructure/auth"
	"github.com/craftkart/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(&config.JWTConfig{
		Secret:                 "test-access-secret-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "craftkart-test",
	})
}

func authRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(cfg))
	handler := func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	}
	r.GET("/api/v1/cart", handler)
	r.GET("/api/v1/products/:id", handler)
	r.GET("/api/v1/admin/orders", AdminRequired(), handler)
	r.POST("/api/v1/orders", RegisteredUserRequired(), handler)
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_RejectsMissingToken(t *testing.T) {
	r := authRouter(DefaultJWTConfig(newTestJWTService()))

	w := doRequest(r, http.MethodGet, "/api/v1/cart", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestJWTAuth_SkipsPublicPrefixes(t *testing.T) {
	r := authRouter(DefaultJWTConfig(newTestJWTService()))

	w := doRequest(r, http.MethodGet, "/api/v1/products/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_AcceptsValidToken(t *testing.T) {
	svc := newTestJWTService()
	r := authRouter(DefaultJWTConfig(svc))

	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "user", false)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/cart", pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestJWTAuth_RejectsRefreshTokenOnAccessEndpoint(t *testing.T) {
	svc := newTestJWTService()
	r := authRouter(DefaultJWTConfig(svc))

	pair, err := svc.GenerateTokenPair(uuid.New(), "user", false)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/cart", pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestJWTAuth_RejectsBlacklistedToken(t *testing.T) {
	svc := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	cfg := DefaultJWTConfig(svc)
	cfg.TokenBlacklist = blacklist
	r := authRouter(cfg)

	pair, err := svc.GenerateTokenPair(uuid.New(), "user", false)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

	w := doRequest(r, http.MethodGet, "/api/v1/cart", pair.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
}

func TestAdminRequired(t *testing.T) {
	svc := newTestJWTService()
	r := authRouter(DefaultJWTConfig(svc))

	shopper, err := svc.GenerateTokenPair(uuid.New(), "user", false)
	require.NoError(t, err)
	w := doRequest(r, http.MethodGet, "/api/v1/admin/orders", shopper.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN_REQUIRED")

	admin, err := svc.GenerateTokenPair(uuid.New(), "admin", false)
	require.NoError(t, err)
	w = doRequest(r, http.MethodGet, "/api/v1/admin/orders", admin.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisteredUserRequired_RejectsAnonymous(t *testing.T) {
	svc := newTestJWTService()
	r := authRouter(DefaultJWTConfig(svc))

	guest, err := svc.GenerateTokenPair(uuid.New(), "user", true)
	require.NoError(t, err)
	w := doRequest(r, http.MethodPost, "/api/v1/orders", guest.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	registered, err := svc.GenerateTokenPair(uuid.New(), "user", false)
	require.NoError(t, err)
	w = doRequest(r, http.MethodPost, "/api/v1/orders", registered.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalJWTAuth(t *testing.T) {
	svc := newTestJWTService()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OptionalJWTAuth(svc))
	r.GET("/products", func(c *gin.Context) {
		_, authed := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": authed})
	})

	w := doRequest(r, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	w = doRequest(r, http.MethodGet, "/products", "garbage")
	assert.Equal(t, http.StatusOK, w.Code, "invalid tokens never block public reads")
	assert.Contains(t, w.Body.String(), "false")

	pair, err := svc.GenerateTokenPair(uuid.New(), "user", false)
	require.NoError(t, err)
	w = doRequest(r, http.MethodGet, "/products", pair.AccessToken)
	assert.Contains(t, w.Body.String(), "true")
}
