package handler

import (
	"github.com/craftkart/backend/internal/application/order"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OrderHandler serves checkout, the shopper's order history and the
// back-office order lifecycle transitions.
type OrderHandler struct {
	BaseHandler
	checkoutService *order.CheckoutService
	orderService    *order.OrderService
}

func NewOrderHandler(checkoutService *order.CheckoutService, orderService *order.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// RegisterRoutes wires the order endpoints. Checkout is limited to
// registered accounts so every order has a reachable owner.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orderGroup := rg.Group("/orders")
	{
		orderGroup.POST("", middleware.RegisteredUserRequired(), h.Checkout)
		orderGroup.GET("", h.ListMyOrders)
		orderGroup.GET("/:id", h.GetMyOrder)
	}

	adminGroup := rg.Group("/admin/orders", middleware.AdminRequired())
	{
		adminGroup.GET("", h.ListOrders)
		adminGroup.GET("/:id", h.GetOrder)
		adminGroup.POST("/:id/approve-payment", h.ApprovePayment)
		adminGroup.POST("/:id/ship", h.MarkShipped)
		adminGroup.POST("/:id/deliver", h.MarkDelivered)
		adminGroup.POST("/:id/cancel", h.Cancel)
	}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.orderService.ListUserOrders(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrderHandler) GetMyOrder(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.GetOrderForUser(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req order.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderHandler) ApprovePayment(c *gin.Context) {
	adminID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.ApprovePayment(c.Request.Context(), adminID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderHandler) MarkShipped(c *gin.Context) {
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.MarkShipped(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.orderService.MarkDelivered(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req order.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.orderService.Cancel(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
