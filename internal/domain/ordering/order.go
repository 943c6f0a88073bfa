package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/shared"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// ParseOrderStatus parses a status string into an OrderStatus
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", raw))
	}
	return status, nil
}

// OrderItem represents a line item in an order.
// The unit price is snapshotted from the product when the item is first
// added and never changes afterwards.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product,priority:1"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_product,priority:2"`
	ProductName string          `gorm:"type:varchar(300);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// Total returns the line total (price x quantity)
func (i *OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a customer order aggregate root.
// An order in pending status is the user's cart: there is exactly one per
// user and it is created lazily on first cart access.
type Order struct {
	shared.BaseAggregateRoot
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_user_status,priority:1"`
	DeliveryAddressID *uuid.UUID      `gorm:"type:uuid"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index:idx_orders_user_status,priority:2"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Notes             string          `gorm:"type:text"`
	ConfirmedAt       *time.Time
	Items             []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewCart creates a new empty pending order for a user
func NewCart(userID uuid.UUID) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            OrderStatusPending,
		TotalAmount:       decimal.Zero,
		Items:             make([]OrderItem, 0),
	}, nil
}

// IsCart reports whether the order is still a mutable cart
func (o *Order) IsCart() bool {
	return o.Status == OrderStatusPending
}

// CanBeCancelled reports whether the order may still be cancelled
func (o *Order) CanBeCancelled() bool {
	switch o.Status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing:
		return true
	}
	return false
}

// ItemQuantity returns the quantity of the given product already in the
// order, or zero when the product is not present.
func (o *Order) ItemQuantity(productID uuid.UUID) int {
	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			return o.Items[idx].Quantity
		}
	}
	return 0
}

// FindItem returns the item with the given ID, or nil
func (o *Order) FindItem(itemID uuid.UUID) *OrderItem {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			return &o.Items[idx]
		}
	}
	return nil
}

// AddItem adds a product to the cart or merges into the existing line.
// The price is snapshotted only when the line is first created; merging
// keeps the original price. Only allowed while the order is pending.
func (o *Order) AddItem(productID uuid.UUID, productName string, price decimal.Decimal, quantity int) (*OrderItem, error) {
	if !o.IsCart() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a non-pending order")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	for idx := range o.Items {
		if o.Items[idx].ProductID == productID {
			o.Items[idx].Quantity += quantity
			o.RecalculateTotal()
			o.UpdatedAt = time.Now()
			return &o.Items[idx], nil
		}
	}

	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price must be positive")
	}

	item := OrderItem{
		ID:          uuid.New(),
		OrderID:     o.ID,
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		CreatedAt:   time.Now(),
	}
	o.Items = append(o.Items, item)
	o.RecalculateTotal()
	o.UpdatedAt = time.Now()

	return &o.Items[len(o.Items)-1], nil
}

// RemoveItem removes an item from the cart. Only allowed while pending.
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	if !o.IsCart() {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a non-pending order")
	}

	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			o.RecalculateTotal()
			o.UpdatedAt = time.Now()
			return nil
		}
	}

	return shared.ErrNotFound
}

// RecalculateTotal recomputes the derived total from the line items.
// It must run after every item mutation; the stored total is a cache,
// never a source of truth.
func (o *Order) RecalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for idx := range o.Items {
		total = total.Add(o.Items[idx].Total())
	}
	o.TotalAmount = total
	return total
}

// Confirm transitions the cart into a confirmed order, attaching the
// delivery address and stamping the confirmation time. Stock revalidation
// happens in the application service before this is called.
func (o *Order) Confirm(addressID uuid.UUID, notes string) error {
	if !o.Status.CanTransitionTo(OrderStatusConfirmed) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot confirm order in %s status", o.Status))
	}
	if len(o.Items) == 0 {
		return shared.ErrEmptyCart
	}
	if addressID == uuid.Nil {
		return shared.ErrMissingAddress
	}

	now := time.Now()
	o.DeliveryAddressID = &addressID
	o.Status = OrderStatusConfirmed
	o.Notes = notes
	o.ConfirmedAt = &now
	o.RecalculateTotal()
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderConfirmedEvent(o))

	return nil
}

// UpdateStatus moves the order to a new status, enforcing the transition
// graph. Cancellation is only reachable while CanBeCancelled holds.
func (o *Order) UpdateStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", target))
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition order from %s to %s", o.Status, target))
	}

	o.Status = target
	o.UpdatedAt = time.Now()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o))

	return nil
}

// Cancel cancels the order if it has not shipped yet
func (o *Order) Cancel() error {
	if !o.CanBeCancelled() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}
	return o.UpdateStatus(OrderStatusCancelled)
}
