package handler

import (
	"github.com/craftkart/backend/internal/application/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReturnHandler serves return requests for shoppers and the
// back-office review queue.
type ReturnHandler struct {
	BaseHandler
	returnService *order.ReturnService
}

func NewReturnHandler(returnService *order.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// RegisterRoutes wires the return endpoints
func (h *ReturnHandler) RegisterRoutes(rg *gin.RouterGroup) {
	returnGroup := rg.Group("/returns")
	{
		returnGroup.POST("", middleware.RegisteredUserRequired(), h.CreateReturn)
		returnGroup.GET("", h.ListMyReturns)
		returnGroup.GET("/:id", h.GetMyReturn)
	}

	adminGroup := rg.Group("/admin/returns", middleware.AdminRequired())
	{
		adminGroup.GET("", h.ListReturns)
		adminGroup.GET("/:id", h.GetReturn)
		adminGroup.POST("/:id/approve", h.ApproveReturn)
		adminGroup.POST("/:id/reject", h.RejectReturn)
		adminGroup.POST("/:id/refund", h.MarkRefunded)
	}
}

func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req order.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.returnService.CreateReturn(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

func (h *ReturnHandler) ListMyReturns(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.returnService.ListUserReturns(c.Request.Context(), userID, q.Page, q.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetMyReturn fetches one return and hides other users' returns
// behind a not found.
func (h *ReturnHandler) GetMyReturn(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	returnID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.returnService.GetReturn(c.Request.Context(), returnID)
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

func (h *ReturnHandler) ListReturns(c *gin.Context) {
	var req order.ListReturnsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.returnService.ListReturns(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ReturnHandler) GetReturn(c *gin.Context) {
	returnID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.returnService.GetReturn(c.Request.Context(), returnID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ReturnHandler) ApproveReturn(c *gin.Context) {
	reviewerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	returnID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.returnService.ApproveReturn(c.Request.Context(), reviewerID, returnID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ReturnHandler) RejectReturn(c *gin.Context) {
	reviewerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	returnID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req order.RejectReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.returnService.RejectReturn(c.Request.Context(), reviewerID, returnID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ReturnHandler) MarkRefunded(c *gin.Context) {
	reviewerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	returnID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.returnService.MarkRefunded(c.Request.Context(), reviewerID, returnID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}
