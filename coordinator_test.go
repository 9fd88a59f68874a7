package kanri_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/yurikaze/kanri"
)

// go test -run ^TestEntitiesWith2$ . -count 1
func TestEntitiesWith2(t *testing.T) {
	c, _, _, _ := setupCoordinator(t)

	both, _ := c.CreateEntity()
	kanri.AddComponent(c, both, Position{})
	kanri.AddComponent(c, both, Velocity{})

	posOnly, _ := c.CreateEntity()
	kanri.AddComponent(c, posOnly, Position{})

	velOnly, _ := c.CreateEntity()
	kanri.AddComponent(c, velOnly, Velocity{})

	got, err := kanri.EntitiesWith2[Position, Velocity](c)
	if err != nil {
		t.Fatalf("EntitiesWith2 failed: %v", err)
	}
	if len(got) != 1 || got[0] != both {
		t.Errorf("Expected [%d], got %v", both, got)
	}

	if _, err := kanri.EntitiesWith2[Position, UnregisteredComponent](c); err == nil {
		t.Error("Expected a fault for an unregistered query type")
	}
}

// go test -run ^TestEntitiesWith2MatchesBruteForce$ . -count 1
func TestEntitiesWith2MatchesBruteForce(t *testing.T) {
	c, _, _, _ := setupCoordinator(t)
	rng := rand.New(rand.NewSource(1))

	ents := make([]kanri.Entity, 100)
	for i := range ents {
		e, err := c.CreateEntity()
		if err != nil {
			t.Fatalf("CreateEntity failed: %v", err)
		}
		ents[i] = e
	}

	// Random add/remove churn across Position and Velocity.
	for i := 0; i < 2000; i++ {
		e := ents[rng.Intn(len(ents))]
		switch rng.Intn(4) {
		case 0:
			kanri.AddComponent(c, e, Position{X: float32(i)})
		case 1:
			kanri.AddComponent(c, e, Velocity{VX: float32(i)})
		case 2:
			kanri.RemoveComponent[Position](c, e)
		case 3:
			kanri.RemoveComponent[Velocity](c, e)
		}
	}

	got, err := kanri.EntitiesWith2[Position, Velocity](c)
	if err != nil {
		t.Fatalf("EntitiesWith2 failed: %v", err)
	}
	var want []kanri.Entity
	for _, e := range c.Entities() {
		if kanri.HasComponent[Position](c, e) && kanri.HasComponent[Velocity](c, e) {
			want = append(want, e)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mismatch at %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

// go test -run ^TestHasComponentPair$ . -count 1
func TestHasComponentPair(t *testing.T) {
	c, _, _, _ := setupCoordinator(t)

	a, _ := c.CreateEntity()
	b, _ := c.CreateEntity()
	kanri.AddComponent(c, a, Position{})
	kanri.AddComponent(c, b, Velocity{})

	if !kanri.HasComponentPair[Position, Velocity](c, a, b) {
		t.Error("Expected pair to hold in declared order")
	}
	if !kanri.HasComponentPair[Velocity, Position](c, a, b) {
		t.Error("Expected pair to hold in swapped type order")
	}
	if !kanri.HasComponentPair[Position, Velocity](c, b, a) {
		t.Error("Expected pair to hold in swapped entity order")
	}
	if kanri.HasComponentPair[Position, Health](c, a, b) {
		t.Error("Expected pair to fail when neither entity has Health")
	}
}

// go test -run ^TestConcurrentAddsOnDisjointEntities$ . -count 1
func TestConcurrentAddsOnDisjointEntities(t *testing.T) {
	c, posID, velID, _ := setupCoordinator(t)
	sys := kanri.RegisterSystem[trackingSystem](c)
	kanri.SetSystemSignature[trackingSystem](c, kanri.MakeSignature(posID, velID))

	const workers = 8
	const perWorker = 100

	ents := make([][]kanri.Entity, workers)
	for w := range ents {
		ents[w] = make([]kanri.Entity, perWorker)
		for i := range ents[w] {
			e, err := c.CreateEntity()
			if err != nil {
				t.Fatalf("CreateEntity failed: %v", err)
			}
			ents[w][i] = e
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(mine []kanri.Entity) {
			defer wg.Done()
			for i, e := range mine {
				if err := kanri.AddComponent(c, e, Position{X: float32(i)}); err != nil {
					t.Errorf("AddComponent Position failed: %v", err)
					return
				}
				if err := kanri.AddComponent(c, e, Velocity{VX: float32(i)}); err != nil {
					t.Errorf("AddComponent Velocity failed: %v", err)
					return
				}
			}
		}(ents[w])
	}
	wg.Wait()

	// No lost updates, no signature/storage divergence.
	for w := range ents {
		for i, e := range ents[w] {
			sig := c.EntitySignature(e)
			if !sig.Test(posID) || !sig.Test(velID) {
				t.Fatalf("Entity %d signature incomplete: %b", e, sig)
			}
			p, err := kanri.GetComponent[Position](c, e)
			if err != nil || p.X != float32(i) {
				t.Fatalf("Entity %d Position diverged: %v %+v", e, err, p)
			}
			if !sys.Contains(e) {
				t.Fatalf("Entity %d missing from interest set", e)
			}
		}
	}
}

// go test -run ^TestExternalLockComposition$ . -count 1
func TestExternalLockComposition(t *testing.T) {
	c, _, _, _ := setupCoordinator(t)
	e, _ := c.CreateEntity()
	kanri.AddComponent(c, e, Position{X: 3})
	kanri.AddComponent(c, e, Velocity{VX: 4})

	// Group several reads into one externally scoped critical
	// section. Only ...Locked variants may run inside it.
	mu := c.Mutex()
	mu.Lock()
	hasPos := kanri.HasComponentLocked[Position](c, e)
	hasVel := kanri.HasComponentLocked[Velocity](c, e)
	p, err := kanri.GetComponentLocked[Position](c, e)
	mu.Unlock()

	if !hasPos || !hasVel {
		t.Error("Expected both components present under the external lock")
	}
	if err != nil || p.X != 3 {
		t.Errorf("Expected Position{3} under the external lock, got %v %+v", err, p)
	}
}
