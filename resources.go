package kanri

import (
	"reflect"
	"sync"
)

// Resources manages host-global values that live alongside the
// registries, such as configuration objects or shared handles. At
// most one value per type. It has its own small lock and is safe to
// use without holding the Coordinator's Mutex.
type Resources struct {
	mu    sync.RWMutex
	items map[reflect.Type]any
}

// AddResource stores the resource. It panics if a resource of the
// same type already exists; replace by removing first.
func AddResource[T any](r *Resources, res *T) {
	if res == nil {
		panic("ecs: cannot add nil resource")
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	if _, ok := r.items[t]; ok {
		panic("ecs: resource of the same type already exists")
	}
	r.items[t] = res
}

// GetResource retrieves the resource of type T, or nil if none was
// added.
func GetResource[T any](r *Resources) *T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[t]
	if !ok {
		return nil
	}
	return res.(*T)
}

// HasResource reports whether a resource of type T exists.
func HasResource[T any](r *Resources) bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[t]
	return ok
}

// RemoveResource removes the resource of type T if it exists.
func RemoveResource[T any](r *Resources) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, t)
}

// Clear removes all resources.
func (r *Resources) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.items)
}
