package event

import (
	"context"
	"errors"
	"testing"

	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
	panic    bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panic {
		panic("handler exploded")
	}
	if h.fail {
		return errors.New("handler failed")
	}
	h.received = append(h.received, event)
	return nil
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func testEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "Order", uuid.New())
	return &e
}

func startedBus(t *testing.T) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	return bus
}

func TestInMemoryEventBus_DeliversToSubscribedType(t *testing.T) {
	bus := startedBus(t)
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), testEvent("order.created")))
	require.NoError(t, bus.Publish(context.Background(), testEvent("order.cancelled")))

	require.Len(t, handler.received, 1)
	assert.Equal(t, "order.created", handler.received[0].EventType())
}

func TestInMemoryEventBus_WildcardReceivesEverything(t *testing.T) {
	bus := startedBus(t)
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), testEvent("order.created"), testEvent("return.requested")))

	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_HandlerFailureDoesNotBlockOthers(t *testing.T) {
	bus := startedBus(t)
	failing := &recordingHandler{types: []string{"order.created"}, fail: true}
	healthy := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), testEvent("order.created")))

	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_PanicIsContained(t *testing.T) {
	bus := startedBus(t)
	panicking := &recordingHandler{types: []string{"order.created"}, panic: true}
	healthy := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	assert.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), testEvent("order.created"))
	})
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_DropsBeforeStart(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), testEvent("order.created")))
	assert.Empty(t, handler.received)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := startedBus(t)
	handler := &recordingHandler{types: []string{"order.created"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), testEvent("order.created")))
	assert.Empty(t, handler.received)
}
