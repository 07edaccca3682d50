package handler

import (
	"github.com/craftkart/backend/internal/application/inquiry"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OrderRequestHandler serves bulk and custom order inquiries plus the
// back-office triage endpoints.
type OrderRequestHandler struct {
	BaseHandler
	requestService *inquiry.RequestService
}

func NewOrderRequestHandler(requestService *inquiry.RequestService) *OrderRequestHandler {
	return &OrderRequestHandler{requestService: requestService}
}

// RegisterRoutes wires the order request endpoints
func (h *OrderRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	requestGroup := rg.Group("/order-requests")
	{
		requestGroup.POST("", h.SubmitRequest)
		requestGroup.GET("", h.ListMyRequests)
		requestGroup.GET("/:id", h.GetMyRequest)
	}

	adminGroup := rg.Group("/admin/order-requests", middleware.AdminRequired())
	{
		adminGroup.GET("", h.ListRequests)
		adminGroup.GET("/:id", h.GetRequest)
		adminGroup.POST("/:id/approve", h.ApproveRequest)
		adminGroup.POST("/:id/reject", h.RejectRequest)
		adminGroup.PUT("/:id/note", h.SetAdminNote)
	}
}

func (h *OrderRequestHandler) SubmitRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req inquiry.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.requestService.SubmitRequest(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *OrderRequestHandler) ListMyRequests(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.requestService.ListUserRequests(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrderRequestHandler) GetMyRequest(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	requestID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.requestService.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if result.UserID != userID && !middleware.IsAdmin(c) {
		h.HandleDomainError(c, shared.ErrNotFound)
		return
	}
	h.Success(c, result)
}

func (h *OrderRequestHandler) ListRequests(c *gin.Context) {
	var req inquiry.ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.requestService.ListRequests(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *OrderRequestHandler) GetRequest(c *gin.Context) {
	requestID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.requestService.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderRequestHandler) ApproveRequest(c *gin.Context) {
	adminID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	requestID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.requestService.ApproveRequest(c.Request.Context(), adminID, requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderRequestHandler) RejectRequest(c *gin.Context) {
	adminID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	requestID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.requestService.RejectRequest(c.Request.Context(), adminID, requestID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *OrderRequestHandler) SetAdminNote(c *gin.Context) {
	requestID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req inquiry.SetAdminNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.requestService.SetAdminNote(c.Request.Context(), requestID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
