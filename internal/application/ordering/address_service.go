package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
)

// AddressService manages the user's delivery address book
type AddressService struct {
	addressRepo ordering.DeliveryAddressRepository
	orderRepo   ordering.OrderRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo ordering.DeliveryAddressRepository, orderRepo ordering.OrderRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
	}
}

// ListAddresses returns the user's addresses, default first, then newest first
func (s *AddressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]ordering.DeliveryAddress, error) {
	return s.addressRepo.FindByUser(ctx, userID)
}

// GetAddress returns an address owned by the user
func (s *AddressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*ordering.DeliveryAddress, error) {
	return s.addressRepo.FindByIDForUser(ctx, userID, addressID)
}

// CreateAddress adds a new address to the user's address book. The first
// address a user creates becomes the default automatically.
func (s *AddressService) CreateAddress(ctx context.Context, userID uuid.UUID, input AddressInput) (*ordering.DeliveryAddress, error) {
	address, err := ordering.NewDeliveryAddress(userID, input.City, input.Street, input.House)
	if err != nil {
		return nil, err
	}
	address.Apartment = input.Apartment
	address.PostalCode = input.PostalCode

	makeDefault := input.IsDefault
	if !makeDefault {
		if _, err := s.addressRepo.FindDefault(ctx, userID); errors.Is(err, shared.ErrNotFound) {
			makeDefault = true
		} else if err != nil {
			return nil, err
		}
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}
	if makeDefault {
		if err := s.addressRepo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, err
		}
		address.IsDefault = true
	}
	return address, nil
}

// UpdateAddress updates an address owned by the user
func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input AddressInput) (*ordering.DeliveryAddress, error) {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := address.Update(input.City, input.Street, input.House, input.Apartment, input.PostalCode); err != nil {
		return nil, err
	}
	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	if input.IsDefault && !address.IsDefault {
		if err := s.addressRepo.SetDefault(ctx, userID, address.ID); err != nil {
			return nil, err
		}
		address.IsDefault = true
	}
	return address, nil
}

// SetDefaultAddress marks the given address as the user's default
func (s *AddressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	return s.addressRepo.SetDefault(ctx, userID, addressID)
}

// DeleteAddress removes an address from the user's address book. Orders
// that reference the address keep their history with the reference cleared.
func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return err
	}

	if err := s.orderRepo.ClearAddress(ctx, address.ID); err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address.ID)
}
