package handler

import (
	"github.com/craftkart/backend/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler serves the caller's cart. Mutations respond
// optimistically; the write itself is dispatched asynchronously.
type CartHandler struct {
	BaseHandler
	cartService *cart.Service
}

func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes wires the cart endpoints
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.POST("/lines", h.AddToCart)
		cartGroup.PATCH("/lines/:id", h.SetQuantity)
		cartGroup.DELETE("/lines/:id", h.RemoveLine)
		cartGroup.DELETE("", h.Clear)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	result, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req cart.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.cartService.AddOrIncrement(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	lineID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req cart.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.cartService.SetQuantity(c.Request.Context(), userID, lineID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	lineID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.cartService.RemoveLine(c.Request.Context(), userID, lineID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
