package persistence

import (
	"context"

	appordering "github.com/shoply/backend/internal/application/ordering"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/ordering"
	"gorm.io/gorm"
)

// GormOrderingTransactionScope implements the checkout transaction scope
// using GORM transactions.
type GormOrderingTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderingTransactionScope creates a new GormOrderingTransactionScope
func NewGormOrderingTransactionScope(db *gorm.DB) *GormOrderingTransactionScope {
	return &GormOrderingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormOrderingTransactionScope) Execute(ctx context.Context, fn func(repos appordering.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormOrderingRepositories{tx: tx})
	})
}

// gormOrderingRepositories provides repositories bound to one transaction
type gormOrderingRepositories struct {
	tx *gorm.DB
}

// OrderRepo returns the order repository scoped to the current transaction
func (r *gormOrderingRepositories) OrderRepo() ordering.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

// AddressRepo returns the address repository scoped to the current transaction
func (r *gormOrderingRepositories) AddressRepo() ordering.DeliveryAddressRepository {
	return NewGormDeliveryAddressRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormOrderingRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Ensure interface conformance
var (
	_ appordering.TransactionScope          = (*GormOrderingTransactionScope)(nil)
	_ appordering.TransactionalRepositories = (*gormOrderingRepositories)(nil)
)
