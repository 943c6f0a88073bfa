package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the catalog context
const (
	EventTypeStoreCreated   = "catalog.store.created"
	EventTypeProductCreated = "catalog.product.created"
	EventTypeProductUpdated = "catalog.product.updated"
)

// StoreCreatedEvent is raised when a new store is created
type StoreCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewStoreCreatedEvent creates a new StoreCreatedEvent
func NewStoreCreatedEvent(store *Store) *StoreCreatedEvent {
	return &StoreCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreCreated, "Store", store.ID),
		Name:            store.Name,
	}
}

// ProductCreatedEvent is raised when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID       `json:"store_id"`
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", product.ID),
		StoreID:         product.StoreID,
		Name:            product.Name,
		Price:           product.Price,
	}
}

// ProductUpdatedEvent is raised when a product's details change
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, "Product", product.ID),
		StoreID:         product.StoreID,
		Name:            product.Name,
	}
}
