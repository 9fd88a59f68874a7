package kanri

import "testing"

type collisionEvent struct {
	A, B Entity
}

type damageEvent struct {
	Target Entity
	Amount int
}

func TestEventBusPublishOrder(t *testing.T) {
	bus := &EventBus{}

	var order []int
	Subscribe(bus, func(ev collisionEvent) { order = append(order, 1) })
	Subscribe(bus, func(ev collisionEvent) { order = append(order, 2) })
	Subscribe(bus, func(ev collisionEvent) { order = append(order, 3) })

	Publish(bus, collisionEvent{A: 1, B: 2})

	if len(order) != 3 {
		t.Fatalf("Expected 3 handler calls, got %d", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("Handlers ran out of subscription order: %v", order)
		}
	}
}

func TestEventBusPayload(t *testing.T) {
	bus := &EventBus{}

	var got damageEvent
	Subscribe(bus, func(ev damageEvent) { got = ev })
	Publish(bus, damageEvent{Target: 7, Amount: 25})

	if got.Target != 7 || got.Amount != 25 {
		t.Errorf("Handler received wrong payload: %+v", got)
	}
}

func TestEventBusUnsubscribedTypeIsNoop(t *testing.T) {
	bus := &EventBus{}
	Subscribe(bus, func(ev damageEvent) { t.Error("wrong handler invoked") })

	// No subscriber for collisionEvent; must not panic or misroute.
	Publish(bus, collisionEvent{})
}

func TestEventBusClear(t *testing.T) {
	bus := &EventBus{}
	calls := 0
	Subscribe(bus, func(ev damageEvent) { calls++ })
	Publish(bus, damageEvent{})
	bus.Clear()
	Publish(bus, damageEvent{})

	if calls != 1 {
		t.Errorf("Expected 1 call after Clear, got %d", calls)
	}
}

func TestCoordinatorOwnsEventBus(t *testing.T) {
	c := NewCoordinator()
	hits := 0
	Subscribe(c.Events(), func(ev collisionEvent) { hits++ })
	Publish(c.Events(), collisionEvent{})
	if hits != 1 {
		t.Errorf("Expected coordinator-owned bus to dispatch, got %d", hits)
	}
}
