package ordering

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), "Widget", decimal.NewFromFloat(price))
	require.NoError(t, err)
	require.NoError(t, product.SetStock(stock))
	return product
}

func TestCartService_GetOrCreateCart(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(orderRepo, productRepo)

	userID := uuid.New()
	cart, _ := ordering.NewCart(userID)
	orderRepo.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil)

	result, err := service.GetOrCreateCart(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, cart, result)
	orderRepo.AssertExpectations(t)
}

func TestCartService_AddItem(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(orderRepo, productRepo)

	userID := uuid.New()
	product := newTestProduct(t, 10, 10.50)
	cart, _ := ordering.NewCart(userID)

	productRepo.On("FindAvailableByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil)
	orderRepo.On("Save", mock.Anything, cart).Return(nil)

	result, err := service.AddItem(context.Background(), userID, product.ID, 2)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
	assert.True(t, result.TotalAmount.Equal(decimal.NewFromFloat(21.00)))
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCartService_AddItem_StockGateCoversExistingQuantity(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(orderRepo, productRepo)

	userID := uuid.New()
	product := newTestProduct(t, 5, 10)
	cart, _ := ordering.NewCart(userID)
	_, err := cart.AddItem(product.ID, product.Name, product.Price, 3)
	require.NoError(t, err)

	productRepo.On("FindAvailableByID", mock.Anything, product.ID).Return(product, nil)
	orderRepo.On("GetOrCreateCart", mock.Anything, userID).Return(cart, nil)

	// 3 already in the cart plus 3 more exceeds the 5 in stock
	_, err = service.AddItem(context.Background(), userID, product.ID, 3)

	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_UnavailableProduct(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(orderRepo, productRepo)

	productID := uuid.New()
	productRepo.On("FindAvailableByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

	_, err := service.AddItem(context.Background(), uuid.New(), productID, 1)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	service := NewCartService(new(MockOrderRepository), new(MockProductRepository))

	_, err := service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)

	assert.Error(t, err)
}

func TestCartService_RemoveItem(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := NewCartService(orderRepo, productRepo)

	userID := uuid.New()
	cart, _ := ordering.NewCart(userID)
	item, _ := cart.AddItem(uuid.New(), "Widget", decimal.NewFromInt(5), 2)

	orderRepo.On("FindCart", mock.Anything, userID).Return(cart, nil)
	orderRepo.On("Save", mock.Anything, cart).Return(nil)

	result, err := service.RemoveItem(context.Background(), userID, item.ID)

	assert.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.True(t, result.TotalAmount.IsZero())
	orderRepo.AssertExpectations(t)
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCartService(orderRepo, new(MockProductRepository))

	userID := uuid.New()
	orderRepo.On("FindCart", mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := service.RemoveItem(context.Background(), userID, uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
