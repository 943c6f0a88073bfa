package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T, repo *GormStoreRepository, name string) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(name)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), store))
	return store
}

func TestGormProductRepository_FindBySKU(t *testing.T) {
	db := setupCatalogTestDB(t)
	storeRepo := NewGormStoreRepository(db)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	store := seedStore(t, storeRepo, "Shop1")
	other := seedStore(t, storeRepo, "Shop2")

	product, _ := catalog.NewProduct(store.ID, "Widget", decimal.NewFromInt(5))
	product.SKU = "W-1"
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindBySKU(ctx, store.ID, "W-1")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	// the SKU is scoped to the store
	_, err = repo.FindBySKU(ctx, other.ID, "W-1")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	// an empty SKU never matches anything
	_, err = repo.FindBySKU(ctx, store.ID, "")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindByName(t *testing.T) {
	db := setupCatalogTestDB(t)
	storeRepo := NewGormStoreRepository(db)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	store := seedStore(t, storeRepo, "Shop1")
	product, _ := catalog.NewProduct(store.ID, "Widget", decimal.NewFromInt(5))
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByName(ctx, store.ID, "Widget")
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = repo.FindByName(ctx, store.ID, "Gadget")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProductRepository_FindAvailableByID(t *testing.T) {
	db := setupCatalogTestDB(t)
	storeRepo := NewGormStoreRepository(db)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	store := seedStore(t, storeRepo, "Shop1")
	product, _ := catalog.NewProduct(store.ID, "Widget", decimal.NewFromInt(5))
	product.SetAvailability(false)
	require.NoError(t, repo.Save(ctx, product))

	_, err := repo.FindAvailableByID(ctx, product.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, found.IsAvailable)
}

func TestGormProductRepository_FindAvailableByStore(t *testing.T) {
	db := setupCatalogTestDB(t)
	storeRepo := NewGormStoreRepository(db)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	store := seedStore(t, storeRepo, "Shop1")
	available, _ := catalog.NewProduct(store.ID, "Widget", decimal.NewFromInt(5))
	require.NoError(t, available.SetStock(3))
	hidden, _ := catalog.NewProduct(store.ID, "Gadget", decimal.NewFromInt(3))
	hidden.SetAvailability(false)
	require.NoError(t, repo.Save(ctx, available))
	require.NoError(t, repo.Save(ctx, hidden))

	products, err := repo.FindAvailableByStore(ctx, store.ID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)

	count, err := repo.CountAvailableByStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormProductRepository_SaveUpdatesExisting(t *testing.T) {
	db := setupCatalogTestDB(t)
	storeRepo := NewGormStoreRepository(db)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	store := seedStore(t, storeRepo, "Shop1")
	product, _ := catalog.NewProduct(store.ID, "Widget", decimal.NewFromInt(5))
	require.NoError(t, repo.Save(ctx, product))

	require.NoError(t, product.SetStock(42))
	require.NoError(t, product.SetPrice(decimal.NewFromFloat(7.50)))
	require.NoError(t, repo.Save(ctx, product))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, found.StockQuantity)
	assert.True(t, found.Price.Equal(decimal.NewFromFloat(7.50)))

	var count int64
	db.Model(&catalog.Product{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGormProductRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormProductRepository(db)

	err := repo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
