package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDeliveryAddressRepository implements DeliveryAddressRepository using GORM
type GormDeliveryAddressRepository struct {
	db *gorm.DB
}

// NewGormDeliveryAddressRepository creates a new GormDeliveryAddressRepository
func NewGormDeliveryAddressRepository(db *gorm.DB) *GormDeliveryAddressRepository {
	return &GormDeliveryAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormDeliveryAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.DeliveryAddress, error) {
	var address ordering.DeliveryAddress
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// FindByIDForUser finds an address owned by the given user
func (r *GormDeliveryAddressRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*ordering.DeliveryAddress, error) {
	var address ordering.DeliveryAddress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// FindByUser lists a user's addresses, default first, then newest first
func (r *GormDeliveryAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]ordering.DeliveryAddress, error) {
	var addresses []ordering.DeliveryAddress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// FindDefault finds the user's default address
func (r *GormDeliveryAddressRepository) FindDefault(ctx context.Context, userID uuid.UUID) (*ordering.DeliveryAddress, error) {
	var address ordering.DeliveryAddress
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

// Save creates or updates an address
func (r *GormDeliveryAddressRepository) Save(ctx context.Context, address *ordering.DeliveryAddress) error {
	return r.db.WithContext(ctx).Save(address).Error
}

// SetDefault atomically clears the default flag on the user's other
// addresses and sets it on the given one
func (r *GormDeliveryAddressRepository) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ordering.DeliveryAddress{}).
			Where("user_id = ? AND id = ?", userID, addressID).
			Update("is_default", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		return tx.Model(&ordering.DeliveryAddress{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_default", false).Error
	})
}

// Delete deletes an address
func (r *GormDeliveryAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.DeliveryAddress{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormDeliveryAddressRepository implements DeliveryAddressRepository
var _ ordering.DeliveryAddressRepository = (*GormDeliveryAddressRepository)(nil)
