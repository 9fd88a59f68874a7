package kanri

import "errors"

// All faults are reported synchronously to the caller at the point of
// the failing call; there is no internal retry and no automatic
// recovery. Errors returned by this package wrap one of the sentinels
// below, so callers can classify them with errors.Is.
var (
	// ErrCapacityExceeded is returned by CreateEntity when the count
	// of living entities has reached MaxEntities.
	ErrCapacityExceeded = errors.New("ecs: too many entities in existence")

	// ErrInvalidDestroy is returned when a destroy is attempted while
	// the living entity count is zero. It is unreachable for
	// correctly paired create/destroy sequences and signals misuse of
	// the raw signature accessors.
	ErrInvalidDestroy = errors.New("ecs: no entities to destroy")

	// ErrComponentNotFound is returned by component lookups on an
	// entity that does not hold a component of the requested type.
	ErrComponentNotFound = errors.New("ecs: component not found")

	// ErrUnregisteredType is returned when a typed operation names a
	// component type that was never registered. Treating such a type
	// as id 0 would silently alias the first registered type, so the
	// lookup faults instead.
	ErrUnregisteredType = errors.New("ecs: component type not registered")
)
