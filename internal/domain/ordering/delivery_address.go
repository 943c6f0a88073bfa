package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/shared"
)

// DeliveryAddress represents a delivery address owned by a user.
// At most one address per user carries the default flag; setting a new
// default clears the flag on the user's other addresses.
type DeliveryAddress struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	City       string    `gorm:"type:varchar(100);not null"`
	Street     string    `gorm:"type:varchar(200);not null"`
	House      string    `gorm:"type:varchar(20);not null"`
	Apartment  string    `gorm:"type:varchar(20)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	IsDefault  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeliveryAddress) TableName() string {
	return "delivery_addresses"
}

// NewDeliveryAddress creates a new delivery address
func NewDeliveryAddress(userID uuid.UUID, city, street, house string) (*DeliveryAddress, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	city = strings.TrimSpace(city)
	street = strings.TrimSpace(street)
	house = strings.TrimSpace(house)
	if city == "" || street == "" || house == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City, street and house are required")
	}

	return &DeliveryAddress{
		ID:        uuid.New(),
		UserID:    userID,
		City:      city,
		Street:    street,
		House:     house,
		CreatedAt: time.Now(),
	}, nil
}

// Update replaces the address fields, keeping the default flag untouched
func (a *DeliveryAddress) Update(city, street, house, apartment, postalCode string) error {
	city = strings.TrimSpace(city)
	street = strings.TrimSpace(street)
	house = strings.TrimSpace(house)
	if city == "" || street == "" || house == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "City, street and house are required")
	}

	a.City = city
	a.Street = street
	a.House = house
	a.Apartment = strings.TrimSpace(apartment)
	a.PostalCode = strings.TrimSpace(postalCode)
	return nil
}

// FullAddress renders the address as a single display string
func (a *DeliveryAddress) FullAddress() string {
	parts := []string{a.City, a.Street, a.House}
	if a.Apartment != "" {
		parts = append(parts, fmt.Sprintf("apt. %s", a.Apartment))
	}
	if a.PostalCode != "" {
		parts = append(parts, fmt.Sprintf("(%s)", a.PostalCode))
	}
	return strings.Join(parts, ", ")
}
