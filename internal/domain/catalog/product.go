package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/shared"
)

// Product represents a product offered by a store
// It is the aggregate root for catalog operations
type Product struct {
	shared.BaseAggregateRoot
	StoreID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_store_available,priority:1"`
	Name          string          `gorm:"type:varchar(300);not null;index:idx_products_store_name"`
	Description   string          `gorm:"type:text"`
	SKU           string          `gorm:"type:varchar(100);index"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	IsAvailable   bool            `gorm:"not null;default:true;index:idx_products_store_available,priority:2"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product for a store
func NewProduct(storeID uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if len(name) > 300 {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 300 characters")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Name:              name,
		Price:             price,
		IsAvailable:       true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// CanBeOrdered reports whether the requested quantity can be ordered
func (p *Product) CanBeOrdered(quantity int) bool {
	return p.IsAvailable && p.StockQuantity >= quantity
}

// InStock reports whether the product has any orderable stock
func (p *Product) InStock() bool {
	return p.IsAvailable && p.StockQuantity > 0
}

// SetPrice updates the product price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	p.Price = price
	p.UpdatedAt = time.Now()
	p.AddDomainEvent(NewProductUpdatedEvent(p))
	return nil
}

// SetStock updates the stock quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}
	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	return nil
}

// SetAvailability toggles whether the product can be ordered
func (p *Product) SetAvailability(available bool) {
	p.IsAvailable = available
	p.UpdatedAt = time.Now()
}

// ApplyImport overwrites the mutable fields from an import row.
// The SKU is only replaced when the row carries one.
func (p *Product) ApplyImport(name, description, sku string, price decimal.Decimal, stock int, available bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be positive")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.StockQuantity = stock
	p.IsAvailable = available
	if sku != "" {
		p.SKU = sku
	}
	p.UpdatedAt = time.Now()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}
