package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// StoreService handles store management and storefront queries
type StoreService struct {
	storeRepo      catalog.StoreRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewStoreService creates a new StoreService
func NewStoreService(storeRepo catalog.StoreRepository, logger *zap.Logger) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StoreService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// ListStores returns active stores for the storefront
func (s *StoreService) ListStores(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Store], error) {
	stores, err := s.storeRepo.FindActive(ctx, filter)
	if err != nil {
		return shared.Paginated[catalog.Store]{}, err
	}
	total, err := s.storeRepo.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[catalog.Store]{}, err
	}
	return shared.NewPaginated(stores, total, filter.Page, filter.Limit()), nil
}

// GetStore returns a store together with its active product count.
// Inactive stores are hidden from the storefront.
func (s *StoreService) GetStore(ctx context.Context, storeID uuid.UUID) (*StoreDetail, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, shared.ErrNotFound
	}

	count, err := s.storeRepo.CountActiveProducts(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	return &StoreDetail{Store: store, ActiveProducts: count}, nil
}

// CreateStore creates a new store. Store names are unique.
func (s *StoreService) CreateStore(ctx context.Context, input StoreInput) (*catalog.Store, error) {
	if _, err := s.storeRepo.FindByName(ctx, input.Name); err == nil {
		return nil, shared.ErrAlreadyExists
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	store, err := catalog.NewStore(input.Name)
	if err != nil {
		return nil, err
	}
	store.Update(input.Description, input.Address, input.Phone, input.Email)

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, &store.BaseAggregateRoot)
	return store, nil
}

// UpdateStore updates a store's contact information
func (s *StoreService) UpdateStore(ctx context.Context, storeID uuid.UUID, input StoreInput) (*catalog.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store.Update(input.Description, input.Address, input.Phone, input.Email)
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) publishEvents(ctx context.Context, root *shared.BaseAggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := root.GetDomainEvents()
	root.ClearDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil && s.logger != nil {
		s.logger.Warn("failed to publish store events", zap.Error(err))
	}
}
