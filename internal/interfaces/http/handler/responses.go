package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/catalog"
	"github.com/shoply/backend/internal/domain/ordering"
)

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// StoreDetailResponse adds catalog counts to a store
type StoreDetailResponse struct {
	StoreResponse
	ActiveProducts int64 `json:"active_products"`
}

func toStoreResponse(store *catalog.Store) StoreResponse {
	return StoreResponse{
		ID:          store.ID,
		Name:        store.Name,
		Description: store.Description,
		Address:     store.Address,
		Phone:       store.Phone,
		Email:       store.Email,
		IsActive:    store.IsActive,
		CreatedAt:   store.CreatedAt,
	}
}

func toStoreResponses(stores []catalog.Store) []StoreResponse {
	out := make([]StoreResponse, len(stores))
	for i := range stores {
		out[i] = toStoreResponse(&stores[i])
	}
	return out
}

// ProductResponse represents a product in API responses.
// The price is rendered as a string to avoid float rounding.
type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"store_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	Price         string    `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}

func toProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID,
		StoreID:       product.StoreID,
		Name:          product.Name,
		Description:   product.Description,
		SKU:           product.SKU,
		Price:         product.Price.StringFixed(2),
		StockQuantity: product.StockQuantity,
		IsAvailable:   product.IsAvailable,
		CreatedAt:     product.CreatedAt,
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       string    `json:"price"`
	Total       string    `json:"total"`
}

// OrderResponse represents an order (or cart) in API responses
type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	Status            string              `json:"status"`
	TotalAmount       string              `json:"total_amount"`
	Notes             string              `json:"notes,omitempty"`
	DeliveryAddressID *uuid.UUID          `json:"delivery_address_id,omitempty"`
	ConfirmedAt       *time.Time          `json:"confirmed_at,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	Items             []OrderItemResponse `json:"items"`
}

func toOrderResponse(order *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items[i] = OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.StringFixed(2),
			Total:       item.Total().StringFixed(2),
		}
	}
	return OrderResponse{
		ID:                order.ID,
		Status:            order.Status.String(),
		TotalAmount:       order.TotalAmount.StringFixed(2),
		Notes:             order.Notes,
		DeliveryAddressID: order.DeliveryAddressID,
		ConfirmedAt:       order.ConfirmedAt,
		CreatedAt:         order.CreatedAt,
		Items:             items,
	}
}

func toOrderResponses(orders []ordering.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

// AddressResponse represents a delivery address in API responses
type AddressResponse struct {
	ID         uuid.UUID `json:"id"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	House      string    `json:"house"`
	Apartment  string    `json:"apartment,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	IsDefault  bool      `json:"is_default"`
	Full       string    `json:"full"`
	CreatedAt  time.Time `json:"created_at"`
}

func toAddressResponse(address *ordering.DeliveryAddress) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		City:       address.City,
		Street:     address.Street,
		House:      address.House,
		Apartment:  address.Apartment,
		PostalCode: address.PostalCode,
		IsDefault:  address.IsDefault,
		Full:       address.FullAddress(),
		CreatedAt:  address.CreatedAt,
	}
}

func toAddressResponses(addresses []ordering.DeliveryAddress) []AddressResponse {
	out := make([]AddressResponse, len(addresses))
	for i := range addresses {
		out[i] = toAddressResponse(&addresses[i])
	}
	return out
}
