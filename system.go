package kanri

import (
	"fmt"
	"reflect"
	"slices"
	"sync/atomic"
)

// defaultTPS is the tick rate a system throttles to until SetTPS is
// called.
const defaultTPS = 30.0

// System is the behavior unit managed by the system registry: a
// long-lived instance with a required signature and a maintained
// interest set of matching entities. Concrete systems embed
// BaseSystem, which carries the interest set and provides no-op
// Update and Render; override either as needed.
type System interface {
	// Update processes one simulation step. The default
	// implementation does nothing.
	Update(dt float64)
	// Render draws the system's entities. The default implementation
	// does nothing.
	Render()

	base() *BaseSystem
}

// BaseSystem holds the state the registry maintains for every system:
// its interest set, plus a fixed-timestep throttle for systems that
// tick slower than the host loop. The zero value is ready to use and
// throttles to defaultTPS.
type BaseSystem struct {
	entities  map[Entity]struct{}
	delta     float64
	threshold float64
	inFlight  atomic.Bool
}

func (b *BaseSystem) base() *BaseSystem { return b }

// Update implements System as a no-op.
func (b *BaseSystem) Update(dt float64) {}

// Render implements System as a no-op.
func (b *BaseSystem) Render() {}

// Entities returns a snapshot of the interest set in ascending order.
// Hosts iterating while other goroutines mutate the Coordinator
// should take the snapshot while holding the Coordinator's Mutex.
func (b *BaseSystem) Entities() []Entity {
	out := make([]Entity, 0, len(b.entities))
	for e := range b.entities {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Contains reports whether the entity is currently in the interest
// set.
func (b *BaseSystem) Contains(e Entity) bool {
	_, ok := b.entities[e]
	return ok
}

func (b *BaseSystem) addEntity(e Entity) {
	if b.entities == nil {
		b.entities = make(map[Entity]struct{})
	}
	b.entities[e] = struct{}{}
}

func (b *BaseSystem) removeEntity(e Entity) {
	delete(b.entities, e)
}

// AddDelta accumulates elapsed time toward the next permitted tick.
func (b *BaseSystem) AddDelta(dt float64) {
	b.delta += dt
}

// Delta returns the time accumulated since the last dispatch.
func (b *BaseSystem) Delta() float64 {
	return b.delta
}

// CanExecute reports whether enough time has accumulated for the next
// tick.
func (b *BaseSystem) CanExecute() bool {
	return b.delta >= b.Threshold()
}

// SetTPS sets the throttle in ticks per second.
func (b *BaseSystem) SetTPS(tps float64) {
	b.threshold = 1.0 / tps
}

// Threshold returns the accumulated-time threshold one tick requires.
func (b *BaseSystem) Threshold() float64 {
	if b.threshold == 0 {
		return 1.0 / defaultTPS
	}
	return b.threshold
}

// ExecuteWhenPossible accumulates dt and, once the threshold is
// reached and no previous dispatch from this system is still in
// flight, hands scheduler a closure that runs task with the consumed
// time slice. The accumulator resets on dispatch and the in-flight
// flag clears when the closure completes. The scheduler is the sole
// integration point with an external worker pool; a scheduler that
// invokes its argument inline is equally valid.
//
// Dispatch is non-reentrant: while a dispatched closure has not
// finished, further calls only accumulate time.
func (b *BaseSystem) ExecuteWhenPossible(dt float64, task func(float64), scheduler func(func())) {
	b.AddDelta(dt)
	if !b.CanExecute() || !b.inFlight.CompareAndSwap(false, true) {
		return
	}
	step := b.Threshold()
	scheduler(func() {
		task(step)
		b.inFlight.Store(false)
	})
	b.delta = 0
}

// systemRegistry holds one instance per registered system type, each
// tagged with the signature it requires.
type systemRegistry struct {
	systems    map[reflect.Type]System
	signatures map[reflect.Type]Signature
}

func newSystemRegistry() *systemRegistry {
	return &systemRegistry{
		systems:    make(map[reflect.Type]System),
		signatures: make(map[reflect.Type]Signature),
	}
}

func (r *systemRegistry) setSignature(t reflect.Type, sig Signature) {
	r.signatures[t] = sig
}

// entityDestroyed removes the entity from every interest set,
// unconditionally.
func (r *systemRegistry) entityDestroyed(e Entity) {
	for _, s := range r.systems {
		s.base().removeEntity(e)
	}
}

// entitySignatureChanged re-tests every registered system against the
// entity's new signature: a system whose requirement is contained in
// it keeps or gains the entity, every other system drops it. This
// unconditional O(#systems) pass is the sole mechanism keeping
// interest sets consistent.
func (r *systemRegistry) entitySignatureChanged(e Entity, sig Signature) {
	for t, s := range r.systems {
		if sig.ContainsAll(r.signatures[t]) {
			s.base().addEntity(e)
		} else {
			s.base().removeEntity(e)
		}
	}
}

// registerSystem constructs and stores one instance of T. Registering
// the same type again returns the existing instance.
func registerSystem[T any](r *systemRegistry) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if existing, ok := r.systems[t]; ok {
		return any(existing).(*T)
	}
	sys := new(T)
	s, ok := any(sys).(System)
	if !ok {
		panic(fmt.Sprintf("ecs: system %s must embed kanri.BaseSystem", t))
	}
	r.systems[t] = s
	return sys
}

func getSystem[T any](r *systemRegistry) *T {
	s, ok := r.systems[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil
	}
	return any(s).(*T)
}
