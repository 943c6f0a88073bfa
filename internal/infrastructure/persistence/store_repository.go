package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Store, error) {
	var store catalog.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindByName finds a store by its exact name
func (r *GormStoreRepository) FindByName(ctx context.Context, name string) (*catalog.Store, error) {
	var store catalog.Store
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindAll finds stores matching the filter
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Store, error) {
	var stores []catalog.Store
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.Store{}), filter, storeSortFields)
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindActive finds all active stores
func (r *GormStoreRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Store, error) {
	var stores []catalog.Store
	query := applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Store{}).Where("is_active = ?", true),
		filter, storeSortFields,
	)
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// GetOrCreateByName returns the store with the given name, creating one when
// none exists. A concurrent create losing the race on the unique name index
// falls back to re-fetching the winner's row.
func (r *GormStoreRepository) GetOrCreateByName(ctx context.Context, name string) (*catalog.Store, bool, error) {
	store, err := r.FindByName(ctx, name)
	if err == nil {
		return store, false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	store, err = catalog.NewStore(name)
	if err != nil {
		return nil, false, err
	}
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		if existing, findErr := r.FindByName(ctx, name); findErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return store, true, nil
}

// CountActiveProducts counts the available products owned by a store
func (r *GormStoreRepository) CountActiveProducts(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("store_id = ? AND is_available = ?", storeID, true).
		Count(&count).Error
	return count, err
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *catalog.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// Delete deletes a store
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stores matching the filter
func (r *GormStoreRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Store{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	err := query.Count(&count).Error
	return count, err
}

// Ensure GormStoreRepository implements StoreRepository
var _ catalog.StoreRepository = (*GormStoreRepository)(nil)
