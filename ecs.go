// Package kanri is a coordinator-style Entity-Component-System core.
//
// A Coordinator owns three registries: an entity registry that hands
// out recyclable integer handles, a component registry that assigns a
// stable id to every registered Go type and routes typed operations to
// a per-type store, and a system registry that keeps each system's
// interest set in step with entity signatures. Every mutation goes
// through the Coordinator, which serializes it behind one
// process-wide lock, so concurrent host threads observe a total order
// of Coordinator calls.
//
// Because Go methods cannot take type parameters, the typed operations
// are package-level generic functions that take the Coordinator as
// their first argument:
//
//	c := kanri.NewCoordinator()
//	kanri.RegisterComponent[Position](c)
//	e, _ := c.CreateEntity()
//	kanri.AddComponent(c, e, Position{X: 1})
package kanri

// MaxEntities bounds the number of concurrently existing entities.
// Entity ids in use and ids in the free pool always partition
// [0, MaxEntities).
const MaxEntities = 5000

// MaxComponentTypes defines the maximum number of unique component
// types that can be registered with a Coordinator. This value is
// fixed at 64, one Signature bit per type.
const MaxComponentTypes = 64

// Entity is an opaque handle identifying one simulated object. It is
// not reference-counted; once destroyed, the id value is recycled and
// a later CreateEntity may hand it out again.
type Entity uint32

// ComponentID is the identifier of a component type, assigned
// sequentially from 0 the first time the type is registered. Ids are
// never reclaimed or reused within a process lifetime.
type ComponentID uint8
