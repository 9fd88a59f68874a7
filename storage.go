package kanri

import "fmt"

// storage is the type-erased view of one per-type component store.
// The component registry holds one of these per registered type and
// needs exactly one capability from it: dropping whatever the store
// holds for a destroyed entity.
type storage interface {
	entityDestroyed(e Entity)
}

// componentStore holds the component values of type T, keyed by
// entity. At most one value per entity.
type componentStore[T any] struct {
	data map[Entity]*T
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{data: make(map[Entity]*T)}
}

// insert stores the value for the entity, overwriting any previous
// one. Overwrites happen in place, so pointers handed out by earlier
// gets keep observing the current value.
func (s *componentStore[T]) insert(e Entity, v T) {
	if p, ok := s.data[e]; ok {
		*p = v
		return
	}
	s.data[e] = &v
}

// remove drops the entry for the entity if present. Removing an
// absent entry is a silent no-op.
func (s *componentStore[T]) remove(e Entity) {
	delete(s.data, e)
}

// get returns a pointer to the stored value for direct read/edit
// access.
func (s *componentStore[T]) get(e Entity) (*T, error) {
	p, ok := s.data[e]
	if !ok {
		return nil, fmt.Errorf("%w: entity %d", ErrComponentNotFound, e)
	}
	return p, nil
}

// has reports whether the store holds a value for the entity.
func (s *componentStore[T]) has(e Entity) bool {
	_, ok := s.data[e]
	return ok
}

func (s *componentStore[T]) entityDestroyed(e Entity) {
	delete(s.data, e)
}
