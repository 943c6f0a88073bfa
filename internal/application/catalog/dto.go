package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/catalog"
)

// StoreInput carries the fields for creating or updating a store
type StoreInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	Email       string
}

// StoreDetail is a store together with its active product count
type StoreDetail struct {
	Store          *catalog.Store `json:"store"`
	ActiveProducts int64          `json:"active_products"`
}

// ProductInput carries the fields for creating or updating a product
type ProductInput struct {
	Name          string
	Description   string
	SKU           string
	Price         decimal.Decimal
	StockQuantity int
	IsAvailable   bool
}
