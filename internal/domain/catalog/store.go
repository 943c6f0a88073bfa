package catalog

import (
	"strings"
	"time"

	"github.com/shoply/backend/internal/domain/shared"
)

// Store represents a merchant store that owns products
// It is the aggregate root for store-related operations
type Store struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Address     string `gorm:"type:varchar(500)"`
	Phone       string `gorm:"type:varchar(20)"`
	Email       string `gorm:"type:varchar(254)"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new active store
func NewStore(name string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot exceed 200 characters")
	}

	store := &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		IsActive:          true,
	}

	store.AddDomainEvent(NewStoreCreatedEvent(store))

	return store, nil
}

// Update updates the store's contact information
func (s *Store) Update(description, address, phone, email string) {
	s.Description = description
	s.Address = address
	s.Phone = phone
	s.Email = email
	s.UpdatedAt = time.Now()
}

// Activate marks the store as active
func (s *Store) Activate() {
	s.IsActive = true
	s.UpdatedAt = time.Now()
}

// Deactivate marks the store as inactive
func (s *Store) Deactivate() {
	s.IsActive = false
	s.UpdatedAt = time.Now()
}
