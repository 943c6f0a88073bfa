package handler

import (
	"github.com/gin-gonic/gin"
	orderingapp "github.com/shoply/backend/internal/application/ordering"
)

// AddressHandler handles delivery address API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *orderingapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *orderingapp.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// AddressRequest represents a request to create or update an address
type AddressRequest struct {
	City       string `json:"city" binding:"required,min=1,max=100"`
	Street     string `json:"street" binding:"required,min=1,max=200"`
	House      string `json:"house" binding:"required,min=1,max=20"`
	Apartment  string `json:"apartment" binding:"max=20"`
	PostalCode string `json:"postal_code" binding:"max=20"`
	IsDefault  bool   `json:"is_default"`
}

func (r AddressRequest) toInput() orderingapp.AddressInput {
	return orderingapp.AddressInput{
		City:       r.City,
		Street:     r.Street,
		House:      r.House,
		Apartment:  r.Apartment,
		PostalCode: r.PostalCode,
		IsDefault:  r.IsDefault,
	}
}

// List returns the user's address book, default first
func (h *AddressHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addresses, err := h.addressService.ListAddresses(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAddressResponses(addresses))
}

// Create adds an address to the user's address book
func (h *AddressHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	address, err := h.addressService.CreateAddress(c.Request.Context(), userID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toAddressResponse(address))
}

// Update replaces an address's fields
func (h *AddressHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	address, err := h.addressService.UpdateAddress(c.Request.Context(), userID, addressID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toAddressResponse(address))
}

// SetDefault marks an address as the user's default
func (h *AddressHandler) SetDefault(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.addressService.SetDefaultAddress(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete removes an address, detaching it from past orders first
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.addressService.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
