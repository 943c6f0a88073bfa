package ordering

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
)

// CartService handles the mutable pending order that acts as the user's cart
type CartService struct {
	orderRepo   ordering.OrderRepository
	productRepo catalog.ProductRepository
}

// NewCartService creates a new CartService
func NewCartService(orderRepo ordering.OrderRepository, productRepo catalog.ProductRepository) *CartService {
	return &CartService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// GetOrCreateCart returns the user's cart, creating an empty one on first access
func (s *CartService) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*ordering.Order, error) {
	return s.orderRepo.GetOrCreateCart(ctx, userID)
}

// AddItem adds a product to the user's cart. The stock gate covers the
// quantity already in the cart, so repeated adds cannot overshoot the
// available stock. The unit price is snapshotted on the first add.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*ordering.Order, error) {
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	product, err := s.productRepo.FindAvailableByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.orderRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	requested := cart.ItemQuantity(productID) + quantity
	if !product.CanBeOrdered(requested) {
		return nil, fmt.Errorf("%w: %q has %d in stock, %d requested",
			shared.ErrInsufficientStock, product.Name, product.StockQuantity, requested)
	}

	if _, err := cart.AddItem(product.ID, product.Name, product.Price, quantity); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem removes a line item from the user's cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*ordering.Order, error) {
	cart, err := s.orderRepo.FindCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
