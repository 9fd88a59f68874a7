package kanri

import (
	"reflect"
	"sync"
)

// Coordinator is the synchronized façade composing the entity,
// component, and system registries into one consistent API. It owns
// the three registries for its lifetime; they are never shared
// outside it.
//
// Every mutating operation is one atomic compound sequence performed
// while holding the coordinator's lock: storage mutation, then
// signature bit update, then interest-set recomputation. Reads
// acquire the same lock unless the caller composes them under an
// externally held Mutex via the ...Locked variants. The lock is not
// reentrant: calling a locking method while already holding Mutex
// deadlocks.
type Coordinator struct {
	mu         sync.Mutex
	entities   *entityRegistry
	components *componentRegistry
	systems    *systemRegistry
	resources  *Resources
	events     *EventBus
}

// NewCoordinator creates a Coordinator with empty registries and the
// full entity id space in the free pool.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		entities:   newEntityRegistry(),
		components: newComponentRegistry(),
		systems:    newSystemRegistry(),
		resources:  &Resources{},
		events:     &EventBus{},
	}
}

// Mutex exposes the coordinator's lock so a host collaborator (for
// example a driving scheduler) can group several ...Locked calls into
// one externally scoped critical section.
func (c *Coordinator) Mutex() *sync.Mutex {
	return &c.mu
}

// Resources returns the coordinator's resource store, a typed
// key-value home for host-global values that live alongside the
// registries.
func (c *Coordinator) Resources() *Resources {
	return c.resources
}

// Events returns the coordinator's event bus for decoupled
// communication between systems.
func (c *Coordinator) Events() *EventBus {
	return c.events
}

// CreateEntity allocates a fresh entity handle with a zero signature.
// It fails with ErrCapacityExceeded once MaxEntities entities exist.
func (c *Coordinator) CreateEntity() (Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entities.create()
}

// DestroyEntity clears the entity's signature, returns its id to the
// free pool, purges its component data from every store, and removes
// it from every system's interest set, all under one lock hold.
// Destroying an entity whose signature is already zero leaves the
// registry untouched but still runs the purge broadcasts.
func (c *Coordinator) DestroyEntity(e Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.entities.destroy(e); err != nil {
		return err
	}
	c.components.entityDestroyed(e)
	c.systems.entityDestroyed(e)
	return nil
}

// EntityExists reports whether e is in range and currently carries a
// non-zero signature. An alive entity that holds no components is
// indistinguishable from a destroyed one here.
func (c *Coordinator) EntityExists(e Entity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entities.exists(e)
}

// EntitySignature returns a snapshot of the entity's signature.
func (c *Coordinator) EntitySignature(e Entity) Signature {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entities.signature(e)
}

// Entities returns all currently existing entities in ascending id
// order. The scan is O(MaxEntities) regardless of how many exist.
func (c *Coordinator) Entities() []Entity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entities.entities()
}

// RegisterComponent assigns the next component id to T and creates
// its store. It must be called before any entity uses T. Registering
// the same type again returns the existing id.
func RegisterComponent[T any](c *Coordinator) ComponentID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerComponent[T](c.components)
}

// ComponentTypeID returns the id assigned to T, or
// ErrUnregisteredType if T was never registered.
func ComponentTypeID[T any](c *Coordinator) (ComponentID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.components.typeID(reflect.TypeOf((*T)(nil)).Elem())
}

// AddComponent atomically stores the value for the entity, sets the
// type's bit in the entity's signature, and recomputes the interest
// set of every system. A repeated add overwrites the stored value.
// If T is unregistered the call fails before mutating anything.
func AddComponent[T any](c *Coordinator, e Entity, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, store, err := resolveStore[T](c.components)
	if err != nil {
		return err
	}
	store.insert(e, v)
	sig := c.entities.signature(e)
	sig.Set(id)
	c.entities.setSignature(e, sig)
	c.systems.entitySignatureChanged(e, sig)
	return nil
}

// RemoveComponent atomically erases the entity's value of type T,
// clears the type's bit in the signature, and recomputes every
// system's interest set. Removing a component the entity does not
// hold is a no-op on the store but still re-evaluates membership.
func RemoveComponent[T any](c *Coordinator, e Entity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, store, err := resolveStore[T](c.components)
	if err != nil {
		return err
	}
	store.remove(e)
	sig := c.entities.signature(e)
	sig.Clear(id)
	c.entities.setSignature(e, sig)
	c.systems.entitySignatureChanged(e, sig)
	return nil
}

// GetComponent returns a pointer to the entity's component of type T
// for direct read/edit access, acquiring the lock for the duration of
// the lookup. It fails with ErrComponentNotFound if the entity holds
// no such component.
func GetComponent[T any](c *Coordinator, e Entity) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GetComponentLocked[T](c, e)
}

// GetComponentLocked is GetComponent for callers that already hold
// Mutex. Calling it without the lock races with concurrent mutations;
// calling GetComponent instead while holding the lock deadlocks.
func GetComponentLocked[T any](c *Coordinator, e Entity) (*T, error) {
	_, store, err := resolveStore[T](c.components)
	if err != nil {
		return nil, err
	}
	return store.get(e)
}

// TryGetComponent returns a pointer to the entity's component of type
// T, or nil when the entity does not hold one or T was never
// registered. It never faults.
func TryGetComponent[T any](c *Coordinator, e Entity) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := GetComponentLocked[T](c, e)
	if err != nil {
		return nil
	}
	return p
}

// HasComponent reports whether the entity's signature carries the bit
// for T. An unregistered type is never present.
func HasComponent[T any](c *Coordinator, e Entity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return HasComponentLocked[T](c, e)
}

// HasComponentLocked is HasComponent for callers that already hold
// Mutex.
func HasComponentLocked[T any](c *Coordinator, e Entity) bool {
	id, err := c.components.typeID(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return false
	}
	return c.entities.signature(e).Test(id)
}

// HasComponentPair reports whether the two component types are
// distributed across the two entities, in either assignment order.
func HasComponentPair[T1, T2 any](c *Coordinator, a, b Entity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return (HasComponentLocked[T1](c, a) && HasComponentLocked[T2](c, b)) ||
		(HasComponentLocked[T2](c, a) && HasComponentLocked[T1](c, b))
}

// EntitiesWith2 scans all existing entities and returns those whose
// signature has the bits for both T1 and T2 set. The predicate is
// purely signature-based and independent of any system's interest
// set.
func EntitiesWith2[T1, T2 any](c *Coordinator) ([]Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id1, err := c.components.typeID(reflect.TypeOf((*T1)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	id2, err := c.components.typeID(reflect.TypeOf((*T2)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	want := MakeSignature(id1, id2)
	var out []Entity
	for _, e := range c.entities.entities() {
		if c.entities.signature(e).ContainsAll(want) {
			out = append(out, e)
		}
	}
	return out, nil
}

// RegisterSystem constructs one instance of T, stores it keyed by its
// type, and returns the shared instance. T must embed BaseSystem.
// Until SetSystemSignature binds a requirement, the system's zero
// signature matches every entity whose signature changes.
func RegisterSystem[T any](c *Coordinator) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerSystem[T](c.systems)
}

// GetSystem returns the registered instance of T, or nil if T was
// never registered.
func GetSystem[T any](c *Coordinator) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return getSystem[T](c.systems)
}

// SetSystemSignature binds the required-capability signature for
// system type T. Set it right after registration, before entities
// start gaining components; membership is only re-evaluated on
// signature changes, so a late rebind does not retroactively adjust
// the interest set.
func SetSystemSignature[T any](c *Coordinator, sig Signature) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.systems.setSignature(reflect.TypeOf((*T)(nil)).Elem(), sig)
}
