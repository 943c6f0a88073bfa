package ordering

import "github.com/google/uuid"

// CheckoutInput carries the checkout parameters. A nil AddressID falls
// back to the user's default delivery address.
type CheckoutInput struct {
	AddressID *uuid.UUID
	Notes     string
}

// AddressInput carries the fields for creating or updating a delivery address
type AddressInput struct {
	City       string
	Street     string
	House      string
	Apartment  string
	PostalCode string
	IsDefault  bool
}
