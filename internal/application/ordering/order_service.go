package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// OrderService handles the order lifecycle from checkout onwards
type OrderService struct {
	txScope        TransactionScope
	orderRepo      ordering.OrderRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	txScope TransactionScope,
	orderRepo ordering.OrderRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		txScope:   txScope,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout turns the user's cart into a confirmed order. The cart row is
// locked for the duration of the transaction, every line is revalidated
// against current product availability and stock, and the delivery address
// falls back to the user's default when none is given. Stock itself is not
// decremented here; fulfilment adjusts stock when the order ships.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*ordering.Order, error) {
	var confirmed *ordering.Order

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		cart, err := repos.OrderRepo().FindCartForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return shared.ErrEmptyCart
		}

		addressID, err := s.resolveAddress(ctx, repos, userID, input.AddressID)
		if err != nil {
			return err
		}

		for idx := range cart.Items {
			item := &cart.Items[idx]
			product, err := repos.ProductRepo().FindAvailableByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return fmt.Errorf("%w: %q is no longer available",
						shared.ErrInsufficientStock, item.ProductName)
				}
				return err
			}
			if !product.CanBeOrdered(item.Quantity) {
				return fmt.Errorf("%w: %q has %d in stock, %d requested",
					shared.ErrInsufficientStock, product.Name, product.StockQuantity, item.Quantity)
			}
		}

		if err := cart.Confirm(addressID, input.Notes); err != nil {
			return err
		}
		if err := repos.OrderRepo().Save(ctx, cart); err != nil {
			return err
		}

		confirmed = cart
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, confirmed)
	return confirmed, nil
}

// GetOrder returns an order owned by the user
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*ordering.Order, error) {
	return s.orderRepo.FindByIDForUser(ctx, userID, orderID)
}

// ListOrders returns the user's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID, filter)
}

// UpdateStatus moves an order to a new status. Only reachable by staff;
// the transition graph is enforced by the aggregate.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, target ordering.OrderStatus) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	return order, nil
}

// CancelOrder cancels an order owned by the user, allowed until it ships
func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*ordering.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	return order, nil
}

// resolveAddress picks the delivery address for checkout: the explicit one
// when given (ownership checked), the user's default otherwise.
func (s *OrderService) resolveAddress(ctx context.Context, repos TransactionalRepositories, userID uuid.UUID, addressID *uuid.UUID) (uuid.UUID, error) {
	if addressID != nil {
		address, err := repos.AddressRepo().FindByIDForUser(ctx, userID, *addressID)
		if err != nil {
			return uuid.Nil, err
		}
		return address.ID, nil
	}

	address, err := repos.AddressRepo().FindDefault(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.ErrMissingAddress
		}
		return uuid.Nil, err
	}
	return address.ID, nil
}

// publishEvents drains the aggregate's domain events onto the bus.
// Publish failures are logged, never surfaced: the order state change has
// already committed and notification delivery is best-effort.
func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order) {
	if s.eventPublisher == nil || order == nil {
		return
	}

	events := order.GetDomainEvents()
	order.ClearDomainEvents()
	if len(events) == 0 {
		return
	}

	if err := s.eventPublisher.Publish(ctx, events...); err != nil && s.logger != nil {
		s.logger.Warn("failed to publish order events",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}
