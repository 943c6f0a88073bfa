package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/shared"
)

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindByName finds a store by its exact name
	FindByName(ctx context.Context, name string) (*Store, error)

	// FindAll finds stores matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Store, error)

	// FindActive finds all active stores
	FindActive(ctx context.Context, filter shared.Filter) ([]Store, error)

	// GetOrCreateByName returns the store with the given name, creating an
	// active store when none exists. Concurrent calls for the same name must
	// not create duplicates.
	GetOrCreateByName(ctx context.Context, name string) (*Store, bool, error)

	// CountActiveProducts counts the available products owned by a store
	CountActiveProducts(ctx context.Context, storeID uuid.UUID) (int64, error)

	// Save creates or updates a store
	Save(ctx context.Context, store *Store) error

	// Delete deletes a store
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts stores matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
