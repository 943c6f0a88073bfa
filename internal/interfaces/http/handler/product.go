package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	catalogapp "github.com/shoply/backend/internal/application/catalog"
	"github.com/shoply/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a request to create or update a product
type ProductRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=300"`
	Description   string `json:"description" binding:"max=5000"`
	SKU           string `json:"sku" binding:"max=100"`
	Price         string `json:"price" binding:"required,money"`
	StockQuantity int    `json:"stock_quantity" binding:"min=0"`
	IsAvailable   *bool  `json:"is_available"`
}

func (r ProductRequest) toInput() (catalogapp.ProductInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return catalogapp.ProductInput{}, err
	}
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return catalogapp.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		SKU:           r.SKU,
		Price:         price,
		StockQuantity: r.StockQuantity,
		IsAvailable:   available,
	}, nil
}

// ListByStore returns the available products of a store
func (h *ProductHandler) ListByStore(c *gin.Context) {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.productService.ListStoreProducts(c.Request.Context(), storeID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, toProductResponses(result.Items), result.Total, result.Page, result.PageSize)
}

// GetByID returns one available product
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(product))
}

// Create adds a product to a store
func (h *ProductHandler) Create(c *gin.Context) {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid store ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.BadRequest(c, "Invalid price")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), storeID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toProductResponse(product))
}

// Update replaces a product's mutable fields
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.BadRequest(c, "Invalid price")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toProductResponse(product))
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
