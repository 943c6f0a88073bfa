package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoply/backend/internal/domain/shared"
)

// Event types for the ordering context
const (
	EventTypeOrderConfirmed     = "ordering.order.confirmed"
	EventTypeOrderStatusChanged = "ordering.order.status_changed"
)

// OrderConfirmedEvent is raised when a cart is checked out into a
// confirmed order. Consumers use it to dispatch the confirmation
// notification; delivery is best-effort.
type OrderConfirmedEvent struct {
	shared.BaseDomainEvent
	UserID      uuid.UUID       `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
}

// NewOrderConfirmedEvent creates a new OrderConfirmedEvent
func NewOrderConfirmedEvent(order *Order) *OrderConfirmedEvent {
	return &OrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderConfirmed, "Order", order.ID),
		UserID:          order.UserID,
		TotalAmount:     order.TotalAmount,
		ItemCount:       len(order.Items),
	}
}

// OrderStatusChangedEvent is raised on any status transition
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID   `json:"user_id"`
	Status OrderStatus `json:"status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(order *Order) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, "Order", order.ID),
		UserID:          order.UserID,
		Status:          order.Status,
	}
}
