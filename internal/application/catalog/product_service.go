package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService handles product management and storefront queries
type ProductService struct {
	productRepo    catalog.ProductRepository
	storeRepo      catalog.StoreRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, storeRepo catalog.StoreRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// ListStoreProducts returns the available products of an active store
func (s *ProductService) ListStoreProducts(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	if !store.IsActive {
		return shared.Paginated[catalog.Product]{}, shared.ErrNotFound
	}

	products, err := s.productRepo.FindAvailableByStore(ctx, store.ID, filter)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	total, err := s.productRepo.CountAvailableByStore(ctx, store.ID)
	if err != nil {
		return shared.Paginated[catalog.Product]{}, err
	}
	return shared.NewPaginated(products, total, filter.Page, filter.Limit()), nil
}

// GetProduct returns an available product for the storefront
func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.FindAvailableByID(ctx, productID)
}

// CreateProduct creates a new product in a store
func (s *ProductService) CreateProduct(ctx context.Context, storeID uuid.UUID, input ProductInput) (*catalog.Product, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(store.ID, input.Name, input.Price)
	if err != nil {
		return nil, err
	}
	product.Description = input.Description
	product.SKU = input.SKU
	if err := product.SetStock(input.StockQuantity); err != nil {
		return nil, err
	}
	product.SetAvailability(input.IsAvailable)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, &product.BaseAggregateRoot)
	return product, nil
}

// UpdateProduct updates a product's details
func (s *ProductService) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.ApplyImport(input.Name, input.Description, input.SKU,
		input.Price, input.StockQuantity, input.IsAvailable); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, &product.BaseAggregateRoot)
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return s.productRepo.Delete(ctx, productID)
}

func (s *ProductService) publishEvents(ctx context.Context, root *shared.BaseAggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := root.GetDomainEvents()
	root.ClearDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil && s.logger != nil {
		s.logger.Warn("failed to publish product events", zap.Error(err))
	}
}
