package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAvailableByID finds a product by ID that is available for ordering
	FindAvailableByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product within a store by SKU
	FindBySKU(ctx context.Context, storeID uuid.UUID, sku string) (*Product, error)

	// FindByName finds a product within a store by exact name
	FindByName(ctx context.Context, storeID uuid.UUID, name string) (*Product, error)

	// FindByStore finds products owned by a store
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// FindAvailableByStore finds available products owned by a store
	FindAvailableByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStore counts products owned by a store
	CountByStore(ctx context.Context, storeID uuid.UUID) (int64, error)

	// CountAvailableByStore counts available products owned by a store
	CountAvailableByStore(ctx context.Context, storeID uuid.UUID) (int64, error)

	// Count counts all products
	Count(ctx context.Context) (int64, error)
}
