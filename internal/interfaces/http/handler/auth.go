package handler

import (
	"github.com/craftkart/backend/internal/application/identity"
	"github.com/craftkart/backend/internal/infrastructure/auth"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves session bootstrap, registration, login, token
// refresh, logout and the caller's own profile.
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
}

// AuthResponse pairs the user with freshly minted tokens
type AuthResponse struct {
	User   *identity.UserResponse `json:"user"`
	Tokens *auth.TokenPair        `json:"tokens"`
}

// RefreshRequest carries the refresh token to trade in
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func NewAuthHandler(authService *identity.AuthService, jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		blacklist:   blacklist,
	}
}

// RegisterRoutes wires the auth endpoints
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/anonymous", h.StartSession)
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.GetProfile)
		authGroup.PUT("/me", h.UpdateProfile)
	}

	adminGroup := rg.Group("/admin/users", middleware.AdminRequired())
	{
		adminGroup.GET("", h.ListUsers)
	}
}

// StartSession creates an anonymous user so a first-time visitor can
// fill a cart before registering.
func (h *AuthHandler) StartSession(c *gin.Context) {
	user, err := h.authService.StartAnonymousSession(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(user.ID, user.Role, true)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, AuthResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(user.ID, user.Role, false)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, AuthResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	tokens, err := h.jwtService.GenerateTokenPair(user.ID, user.Role, false)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, AuthResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tokens, err := h.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		h.Unauthorized(c, "Invalid refresh token")
		return
	}
	h.Success(c, tokens)
}

// Logout blacklists the current access token until it would have
// expired on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if h.blacklist != nil && claims.ID != "" {
		if err := h.blacklist.AddToBlacklist(c.Request.Context(), claims.ID, h.jwtService.AccessTokenTTL()); err != nil {
			h.HandleDomainError(c, err)
			return
		}
	}
	h.NoContent(c)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req identity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, user)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	var req identity.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.authService.ListUsers(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
