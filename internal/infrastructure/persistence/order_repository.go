package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID with items preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindByIDForUser finds an order owned by the given user
func (r *GormOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND id = ?", userID, id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindCart finds the user's pending order
func (r *GormOrderRepository) FindCart(ctx context.Context, userID uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND status = ?", userID, ordering.OrderStatusPending).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindCartForUpdate finds the user's pending order holding a row lock until
// the surrounding transaction finishes
func (r *GormOrderRepository) FindCartForUpdate(ctx context.Context, userID uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND status = ?", userID, ordering.OrderStatusPending).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", order.ID).
		Order("created_at ASC").
		Find(&order.Items).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrCreateCart returns the user's pending order, creating an empty one
// when none exists. A concurrent create losing the race on the partial
// unique index falls back to re-fetching the winner's cart.
func (r *GormOrderRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*ordering.Order, error) {
	cart, err := r.FindCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cart, err = ordering.NewCart(userID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(cart).Error; err != nil {
		if existing, findErr := r.FindCart(ctx, userID); findErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return cart, nil
}

// FindByUser finds all orders for a user, items preloaded
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	var orders []ordering.Order
	query := applyFilter(
		r.db.WithContext(ctx).Model(&ordering.Order{}).
			Preload("Items").
			Where("user_id = ?", userID),
		filter, orderSortFields,
	)
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save persists the order aggregate: the order row, upserts for the current
// items and deletes for item rows dropped from the aggregate.
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(order).Error; err != nil {
			return err
		}

		keep := make([]uuid.UUID, 0, len(order.Items))
		for idx := range order.Items {
			order.Items[idx].OrderID = order.ID
			if err := tx.Save(&order.Items[idx]).Error; err != nil {
				return err
			}
			keep = append(keep, order.Items[idx].ID)
		}

		stale := tx.Where("order_id = ?", order.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		return stale.Delete(&ordering.OrderItem{}).Error
	})
}

// CountPendingByUser counts pending orders for a user
func (r *GormOrderRepository) CountPendingByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ordering.Order{}).
		Where("user_id = ? AND status = ?", userID, ordering.OrderStatusPending).
		Count(&count).Error
	return count, err
}

// ClearAddress detaches a delivery address from any orders referencing it
func (r *GormOrderRepository) ClearAddress(ctx context.Context, addressID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&ordering.Order{}).
		Where("delivery_address_id = ?", addressID).
		Update("delivery_address_id", nil).Error
}

// Ensure GormOrderRepository implements OrderRepository
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
