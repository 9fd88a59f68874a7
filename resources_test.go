package kanri

import "testing"

type worldConfig struct {
	Gravity float64
}

type frameClock struct {
	Ticks int
}

func TestResourcesAddGet(t *testing.T) {
	r := &Resources{}
	AddResource(r, &worldConfig{Gravity: 9.81})

	cfg := GetResource[worldConfig](r)
	if cfg == nil || cfg.Gravity != 9.81 {
		t.Fatalf("Expected stored config back, got %+v", cfg)
	}
	if !HasResource[worldConfig](r) {
		t.Error("HasResource is false for a stored type")
	}
	if GetResource[frameClock](r) != nil {
		t.Error("Expected nil for a type never added")
	}
}

func TestResourcesDuplicatePanics(t *testing.T) {
	r := &Resources{}
	AddResource(r, &worldConfig{})

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate resource type")
		}
	}()
	AddResource(r, &worldConfig{})
}

func TestResourcesRemove(t *testing.T) {
	r := &Resources{}
	AddResource(r, &worldConfig{})
	RemoveResource[worldConfig](r)

	if HasResource[worldConfig](r) {
		t.Error("Expected resource gone after Remove")
	}
	// Removing again is a no-op; re-adding is allowed.
	RemoveResource[worldConfig](r)
	AddResource(r, &worldConfig{Gravity: 1})
	if GetResource[worldConfig](r).Gravity != 1 {
		t.Error("Expected re-added resource")
	}
}

func TestResourcesClear(t *testing.T) {
	r := &Resources{}
	AddResource(r, &worldConfig{})
	AddResource(r, &frameClock{})
	r.Clear()

	if HasResource[worldConfig](r) || HasResource[frameClock](r) {
		t.Error("Expected empty store after Clear")
	}
}

func TestCoordinatorOwnsResources(t *testing.T) {
	c := NewCoordinator()
	AddResource(c.Resources(), &frameClock{Ticks: 60})
	clock := GetResource[frameClock](c.Resources())
	if clock == nil || clock.Ticks != 60 {
		t.Errorf("Expected coordinator-owned store to hold the clock, got %+v", clock)
	}
}
