package handler

import (
	"github.com/craftkart/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// AddressHandler serves the caller's address book.
type AddressHandler struct {
	BaseHandler
	addressService *identity.AddressService
}

func NewAddressHandler(addressService *identity.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// RegisterRoutes wires the address endpoints
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	addressGroup := rg.Group("/addresses")
	{
		addressGroup.GET("", h.ListAddresses)
		addressGroup.POST("", h.CreateAddress)
		addressGroup.PUT("/:id", h.UpdateAddress)
		addressGroup.DELETE("/:id", h.DeleteAddress)
		addressGroup.POST("/:id/default", h.SetDefault)
	}
}

func (h *AddressHandler) ListAddresses(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	addresses, err := h.addressService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, addresses)
}

func (h *AddressHandler) CreateAddress(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req identity.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, address)
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	addressID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req identity.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), userID, addressID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, address)
}

func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	addressID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), userID, addressID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AddressHandler) SetDefault(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	addressID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.addressService.SetDefault(c.Request.Context(), userID, addressID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
