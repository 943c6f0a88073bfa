package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/shared"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID with items preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByIDForUser finds an order owned by the given user
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Order, error)

	// FindCart finds the user's pending order, or shared.ErrNotFound
	FindCart(ctx context.Context, userID uuid.UUID) (*Order, error)

	// GetOrCreateCart returns the user's pending order, creating an empty
	// one when none exists. Concurrent calls for the same user must never
	// yield two pending orders; the unique index on (user_id) WHERE
	// status='pending' backs this up.
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*Order, error)

	// FindCartForUpdate finds the user's pending order with a row lock.
	// Only meaningful inside a transaction.
	FindCartForUpdate(ctx context.Context, userID uuid.UUID) (*Order, error)

	// FindByUser finds all orders for a user, newest first, items preloaded
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)

	// Save persists the order aggregate: the order row plus its items,
	// removing rows for items no longer present on the aggregate.
	Save(ctx context.Context, order *Order) error

	// CountPendingByUser counts pending orders for a user
	CountPendingByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ClearAddress detaches a delivery address from any orders referencing it
	ClearAddress(ctx context.Context, addressID uuid.UUID) error
}

// DeliveryAddressRepository defines the interface for address persistence
type DeliveryAddressRepository interface {
	// FindByID finds an address by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryAddress, error)

	// FindByIDForUser finds an address owned by the given user
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*DeliveryAddress, error)

	// FindByUser lists a user's addresses, default first, then newest first
	FindByUser(ctx context.Context, userID uuid.UUID) ([]DeliveryAddress, error)

	// FindDefault finds the user's default address, or shared.ErrNotFound
	FindDefault(ctx context.Context, userID uuid.UUID) (*DeliveryAddress, error)

	// Save creates or updates an address
	Save(ctx context.Context, address *DeliveryAddress) error

	// SetDefault atomically clears the default flag on the user's other
	// addresses and sets it on the given one.
	SetDefault(ctx context.Context, userID, addressID uuid.UUID) error

	// Delete deletes an address
	Delete(ctx context.Context, id uuid.UUID) error
}
