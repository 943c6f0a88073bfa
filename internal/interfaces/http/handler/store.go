package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/shoply/backend/internal/application/catalog"
	"github.com/shoply/backend/internal/interfaces/http/dto"
)

// StoreHandler handles store API endpoints
type StoreHandler struct {
	BaseHandler
	storeService *catalogapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *catalogapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStoreRequest represents a request to create a store
type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Address     string `json:"address" binding:"max=500"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=254"`
}

// UpdateStoreRequest represents a request to update a store
type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Address     string `json:"address" binding:"max=500"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=254"`
}

// List returns active stores
func (h *StoreHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	result, err := h.storeService.ListStores(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toStoreResponses(result.Items), result.Total, result.Page, result.PageSize)
}

// GetByID returns one active store with its product count
func (h *StoreHandler) GetByID(c *gin.Context) {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	detail, err := h.storeService.GetStore(c.Request.Context(), storeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, StoreDetailResponse{
		StoreResponse:  toStoreResponse(detail.Store),
		ActiveProducts: detail.ActiveProducts,
	})
}

// Create creates a new store
func (h *StoreHandler) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), catalogapp.StoreInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toStoreResponse(store))
}

// Update updates a store's details
func (h *StoreHandler) Update(c *gin.Context) {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), storeID, catalogapp.StoreInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toStoreResponse(store))
}
