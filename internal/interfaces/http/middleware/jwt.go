package middleware

import (
	"net/http"
	"strings"

	"github.com/craftkart/backend/internal/infrastructure/auth"
	"github.com/craftkart/backend/internal/infrastructure/logger"
	"github.com/craftkart/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	JWTClaimsKey    = "jwt_claims"
	JWTUserIDKey    = "jwt_user_id"
	JWTRoleKey      = "jwt_role"
	JWTAnonymousKey = "jwt_anonymous"
	authHeaderKey   = "Authorization"
	bearerPrefix    = "Bearer "
	adminRole       = "admin"
)

// JWTMiddlewareConfig configures the authentication middleware.
type JWTMiddlewareConfig struct {
	JWTService *auth.JWTService
	// TokenBlacklist is optional; when set, revoked tokens are rejected
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are exact paths served without a token
	SkipPaths []string
	// SkipPathPrefixes are path prefixes served without a token
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// DefaultJWTConfig skips the endpoints a visitor must reach before
// holding any token: health checks, session bootstrap, login, refresh
// and the public storefront reads.
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/ready",
			"/api/v1/auth/anonymous",
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/api/v1/products",
			"/api/v1/content",
		},
	}
}

// JWTAuth validates the bearer token and stores its claims on the
// request. Requests to skip paths pass through untouched.
func JWTAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		header := c.GetHeader(authHeaderKey)
		if header == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "missing authorization header")
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "malformed authorization header")
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			if claims.ID != "" {
				blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// fail open so a Redis outage does not lock everyone out
					if cfg.Logger != nil {
						cfg.Logger.Error("token blacklist check failed", zap.String("jti", claims.ID), zap.Error(err))
					}
				} else if blacklisted {
					abortUnauthorized(c, cfg, auth.ErrTokenRevoked, "token revoked")
					return
				}
			}

			if issuedAt := claims.IssuedAt; issuedAt != nil {
				invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID.String(), issuedAt.Time)
				if err != nil {
					if cfg.Logger != nil {
						cfg.Logger.Error("user token invalidation check failed", zap.String("user_id", claims.UserID.String()), zap.Error(err))
					}
				} else if invalidated {
					abortUnauthorized(c, cfg, auth.ErrTokenRevoked, "session invalidated")
					return
				}
			}
		}

		setClaims(c, claims)

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		ctx, _ = logger.WithUserID(ctx, log, claims.UserID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalJWTAuth extracts claims when a valid token is present but
// never rejects the request. Public storefront endpoints use it so a
// signed-in shopper still gets personalized responses.
func OptionalJWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderKey)
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		claims, err := jwtService.ValidateAccessToken(strings.TrimPrefix(header, bearerPrefix))
		if err == nil {
			setClaims(c, claims)
		}
		c.Next()
	}
}

// AdminRequired rejects requests whose token does not carry the admin
// role. It must run after JWTAuth.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "authentication required", requestID(c)))
			return
		}
		if claims.Role != adminRole || claims.IsAnonymous {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeAdminRequired, "admin access required", requestID(c)))
			return
		}
		c.Next()
	}
}

// RegisteredUserRequired rejects anonymous sessions. Checkout and
// address management need a permanent account.
func RegisteredUserRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "authentication required", requestID(c)))
			return
		}
		if claims.IsAnonymous {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "a registered account is required", requestID(c)))
			return
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)
	c.Set(JWTUserIDKey, claims.UserID)
	c.Set(JWTRoleKey, claims.Role)
	c.Set(JWTAnonymousKey, claims.IsAnonymous)
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("authentication failed",
			zap.Error(err),
			zap.String("reason", message),
			zap.String("path", c.Request.URL.Path))
	}

	code := dto.ErrCodeUnauthorized
	switch err {
	case auth.ErrExpiredToken:
		code = dto.ErrCodeTokenExpired
	case auth.ErrInvalidToken, auth.ErrWrongTokenType, auth.ErrTokenNotYetValid:
		code = dto.ErrCodeTokenInvalid
	case auth.ErrTokenRevoked:
		code = dto.ErrCodeTokenRevoked
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(code, "authentication required", requestID(c)))
}

// GetClaims returns the validated claims, or nil outside an
// authenticated request.
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(JWTUserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// IsAdmin reports whether the request carries an admin token.
func IsAdmin(c *gin.Context) bool {
	claims := GetClaims(c)
	return claims != nil && claims.Role == adminRole && !claims.IsAnonymous
}
