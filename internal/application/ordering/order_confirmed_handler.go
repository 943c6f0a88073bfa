package ordering

import (
	"context"
	"fmt"

	"github.com/shoply/backend/internal/domain/ordering"
	"github.com/shoply/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Notifier delivers order confirmation notices to the customer.
// Delivery is best-effort; a failed notification never fails the order.
type Notifier interface {
	NotifyOrderConfirmed(ctx context.Context, event *ordering.OrderConfirmedEvent) error
}

// LogNotifier writes notifications to the application log. It stands in
// for a mail or messenger integration in environments without one.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyOrderConfirmed logs the confirmation notice
func (n *LogNotifier) NotifyOrderConfirmed(_ context.Context, event *ordering.OrderConfirmedEvent) error {
	n.logger.Info("order confirmed",
		zap.String("order_id", event.AggregateID().String()),
		zap.String("user_id", event.UserID.String()),
		zap.String("total_amount", event.TotalAmount.StringFixed(2)),
		zap.Int("item_count", event.ItemCount))
	return nil
}

// OrderConfirmedHandler reacts to order confirmations by dispatching the
// customer notification.
type OrderConfirmedHandler struct {
	notifier Notifier
	logger   *zap.Logger
}

// NewOrderConfirmedHandler creates a new OrderConfirmedHandler
func NewOrderConfirmedHandler(notifier Notifier, logger *zap.Logger) *OrderConfirmedHandler {
	return &OrderConfirmedHandler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle processes an OrderConfirmedEvent
func (h *OrderConfirmedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	confirmed, ok := event.(*ordering.OrderConfirmedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s", event.EventType())
	}

	if err := h.notifier.NotifyOrderConfirmed(ctx, confirmed); err != nil {
		h.logger.Warn("order confirmation notification failed",
			zap.String("order_id", confirmed.AggregateID().String()),
			zap.Error(err))
	}
	return nil
}

// EventTypes returns the event types this handler subscribes to
func (h *OrderConfirmedHandler) EventTypes() []string {
	return []string{ordering.EventTypeOrderConfirmed}
}

// Ensure OrderConfirmedHandler implements EventHandler
var _ shared.EventHandler = (*OrderConfirmedHandler)(nil)
