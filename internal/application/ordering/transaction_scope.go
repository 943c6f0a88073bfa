package ordering

import (
	"context"

	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/ordering"
)

// TransactionScope provides transactional access to the repositories the
// checkout path touches. All repository operations inside Execute share one
// database transaction and commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to repositories scoped to the
// current transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() ordering.OrderRepository
	// AddressRepo returns the address repository scoped to the current transaction
	AddressRepo() ordering.DeliveryAddressRepository
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope runs the function against plain repositories without
// an enclosing transaction. Useful for tests.
type NoOpTransactionScope struct {
	orderRepo   ordering.OrderRepository
	addressRepo ordering.DeliveryAddressRepository
	productRepo catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	orderRepo ordering.OrderRepository,
	addressRepo ordering.DeliveryAddressRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		productRepo: productRepo,
	}
}

// Execute runs the function with the configured repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() ordering.OrderRepository {
	return s.orderRepo
}

// AddressRepo returns the address repository
func (s *NoOpTransactionScope) AddressRepo() ordering.DeliveryAddressRepository {
	return s.addressRepo
}

// ProductRepo returns the product repository
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var (
	_ TransactionScope          = (*NoOpTransactionScope)(nil)
	_ TransactionalRepositories = (*NoOpTransactionScope)(nil)
)
