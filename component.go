package kanri

import (
	"fmt"
	"reflect"
)

// componentRegistry assigns stable sequential ids to component types
// at registration time and routes typed operations to the per-type
// store. Stores sit in a fixed array indexed by id, so the destroy
// broadcast never touches a hash map.
type componentRegistry struct {
	typeIDs map[reflect.Type]ComponentID
	stores  [MaxComponentTypes]storage
	nextID  uint16 // counter for assigning new component type ids
}

func newComponentRegistry() *componentRegistry {
	return &componentRegistry{typeIDs: make(map[reflect.Type]ComponentID, 16)}
}

// typeID looks up the id previously assigned to t. A type that was
// never registered faults; defaulting to id 0 would alias the first
// registered type.
func (r *componentRegistry) typeID(t reflect.Type) (ComponentID, error) {
	id, ok := r.typeIDs[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnregisteredType, t)
	}
	return id, nil
}

// entityDestroyed broadcasts the destruction to every registered
// store, whether or not it holds data for the entity.
func (r *componentRegistry) entityDestroyed(e Entity) {
	for i := uint16(0); i < r.nextID; i++ {
		r.stores[i].entityDestroyed(e)
	}
}

// registerComponent assigns the next id to T and creates its store.
// Registering the same type again returns the existing id. It panics
// when the number of distinct types would exceed MaxComponentTypes.
func registerComponent[T any](r *componentRegistry) ComponentID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := r.typeIDs[t]; ok {
		return id
	}
	if r.nextID >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", t, MaxComponentTypes))
	}
	id := ComponentID(r.nextID)
	r.typeIDs[t] = id
	r.stores[id] = newComponentStore[T]()
	r.nextID++
	return id
}

// resolveStore returns the id and typed store for T.
func resolveStore[T any](r *componentRegistry) (ComponentID, *componentStore[T], error) {
	id, err := r.typeID(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return 0, nil, err
	}
	return id, r.stores[id].(*componentStore[T]), nil
}
