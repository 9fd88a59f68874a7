package kanri

import (
	"reflect"
	"sync"
)

// MaxEventTypes defines the maximum number of unique event types that
// can be registered in the EventBus. This value is fixed at 64.
const MaxEventTypes = 64

// EventBus provides a simple, type-safe event bus for decoupled
// communication between systems. A system subscribes to the event
// types it cares about and publishers never learn who listens.
//
// Subscription and publication take the bus's own lock, not the
// Coordinator's, so systems may publish from inside a dispatched task
// without holding Mutex.
type EventBus struct {
	mu              sync.RWMutex
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint8
}

// Subscribe registers a handler function to be called when an event
// of type T is published. Handlers run in subscription order.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	bus.mu.Lock()
	defer bus.mu.Unlock()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts an event of type T to all registered handlers
// for that type, synchronously, in the order they subscribed.
// Publishing a type nobody subscribed to is a no-op.
func Publish[T any](bus *EventBus, event T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	bus.mu.RLock()
	var hs []any
	if id, ok := bus.eventTypeMap[t]; ok {
		hs = bus.handlers[id]
	}
	bus.mu.RUnlock()
	for _, h := range hs {
		h.(func(T))(event)
	}
}

// Clear drops every subscription. Event type ids are retained.
func (bus *EventBus) Clear() {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i := range bus.handlers {
		bus.handlers[i] = nil
	}
}

// getEventTypeID retrieves or assigns an id for the event type.
// Callers must hold bus.mu.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	id := bus.nextEventTypeID
	if int(id) >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
