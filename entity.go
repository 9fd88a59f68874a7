package kanri

import "fmt"

// entityRegistry allocates and recycles entity handles and owns each
// entity's signature. Signatures live in a fixed arena indexed
// directly by entity id, so signature access is O(1) with no hashing.
//
// The free pool is a FIFO ring: destroyed ids go to the back and are
// not handed out again until every other free id has been used. Free
// ids and living ids partition [0, MaxEntities) at all times.
type entityRegistry struct {
	free       [MaxEntities]Entity
	freeHead   int
	freeCount  int
	signatures [MaxEntities]Signature
	living     uint32
}

func newEntityRegistry() *entityRegistry {
	r := &entityRegistry{freeCount: MaxEntities}
	for i := range r.free {
		r.free[i] = Entity(i)
	}
	return r
}

// create pops the next id from the free pool. The new entity's
// signature is zero; until a component is added, it is
// indistinguishable from a nonexistent one.
func (r *entityRegistry) create() (Entity, error) {
	if r.living >= MaxEntities {
		return 0, fmt.Errorf("%w (%d/%d)", ErrCapacityExceeded, r.living, MaxEntities)
	}
	e := r.free[r.freeHead]
	r.freeHead = (r.freeHead + 1) % MaxEntities
	r.freeCount--
	r.living++
	return e, nil
}

// destroy clears the entity's signature and returns its id to the
// free pool. An entity whose signature is already zero is treated as
// nonexistent, so destroying it is a no-op.
func (r *entityRegistry) destroy(e Entity) error {
	if r.signatures[e].IsZero() {
		return nil
	}
	if r.living == 0 {
		return ErrInvalidDestroy
	}
	r.signatures[e] = 0
	r.free[(r.freeHead+r.freeCount)%MaxEntities] = e
	r.freeCount++
	r.living--
	return nil
}

// exists reports whether the id is in range and carries a non-zero
// signature. An entity that lost all of its components reads as
// nonexistent here.
func (r *entityRegistry) exists(e Entity) bool {
	return e < MaxEntities && !r.signatures[e].IsZero()
}

// entities scans the whole entity space and collects the existing
// ids, in ascending order. O(MaxEntities) per call; callers that need
// this every frame should cache.
func (r *entityRegistry) entities() []Entity {
	out := make([]Entity, 0, r.living)
	for e := Entity(0); e < MaxEntities; e++ {
		if !r.signatures[e].IsZero() {
			out = append(out, e)
		}
	}
	return out
}

func (r *entityRegistry) signature(e Entity) Signature {
	return r.signatures[e]
}

func (r *entityRegistry) setSignature(e Entity, s Signature) {
	r.signatures[e] = s
}
