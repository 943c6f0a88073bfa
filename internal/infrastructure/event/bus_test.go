package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shoply/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "TestAggregate", uuid.New()),
	}
}

type testHandler struct {
	mu         sync.Mutex
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	panics     bool
}

func newTestHandler(eventTypes ...string) *testHandler {
	return &testHandler{eventTypes: eventTypes}
}

func (h *testHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("boom")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	return h.err
}

func (h *testHandler) EventTypes() []string {
	return h.eventTypes
}

func (h *testHandler) handledCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := newTestHandler("order.confirmed")
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("order.confirmed"))

	require.NoError(t, err)
	assert.Equal(t, 1, handler.handledCount())
}

func TestInMemoryEventBus_Publish_OnlyMatchingHandlers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	confirmed := newTestHandler("order.confirmed")
	cancelled := newTestHandler("order.cancelled")
	bus.Subscribe(confirmed)
	bus.Subscribe(cancelled)

	err := bus.Publish(context.Background(), newTestEvent("order.confirmed"))

	require.NoError(t, err)
	assert.Equal(t, 1, confirmed.handledCount())
	assert.Equal(t, 0, cancelled.handledCount())
}

func TestInMemoryEventBus_Publish_WildcardHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	wildcard := newTestHandler()
	bus.Subscribe(wildcard)

	err := bus.Publish(context.Background(),
		newTestEvent("order.confirmed"),
		newTestEvent("store.created"),
	)

	require.NoError(t, err)
	assert.Equal(t, 2, wildcard.handledCount())
}

func TestInMemoryEventBus_Publish_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := newTestHandler("order.confirmed")
	failing.err = errors.New("handler error")
	healthy := newTestHandler("order.confirmed")
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("order.confirmed"))

	require.NoError(t, err)
	assert.Equal(t, 1, healthy.handledCount())
}

func TestInMemoryEventBus_Publish_HandlerPanicIsContained(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	panicking := newTestHandler("order.confirmed")
	panicking.panics = true
	healthy := newTestHandler("order.confirmed")
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newTestEvent("order.confirmed"))

	require.NoError(t, err)
	assert.Equal(t, 1, healthy.handledCount())
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := newTestHandler("order.confirmed")
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	err := bus.Publish(context.Background(), newTestEvent("order.confirmed"))

	require.NoError(t, err)
	assert.Equal(t, 0, handler.handledCount())
}

func TestHandlerRegistry_GetHandlers(t *testing.T) {
	registry := NewHandlerRegistry()

	typed := newTestHandler("order.confirmed")
	wildcard := newTestHandler()
	registry.Register(typed, "order.confirmed")
	registry.Register(wildcard)

	assert.Len(t, registry.GetHandlers("order.confirmed"), 2)
	assert.Len(t, registry.GetHandlers("store.created"), 1)

	registry.Unregister(typed)
	assert.Len(t, registry.GetHandlers("order.confirmed"), 1)
}
