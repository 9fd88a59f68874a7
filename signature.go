package kanri

// Signature is a fixed-width bit vector with one bit per registered
// component type, indexed by ComponentID. For an entity, bit i is set
// exactly when the entity currently holds a component of type i. For a
// system, the set bits name the component types the system requires.
type Signature uint64

// MakeSignature builds a Signature with the bits for the given
// component ids set.
func MakeSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s.Set(id)
	}
	return s
}

// Set enables the bit corresponding to the given component id.
func (s *Signature) Set(bit ComponentID) {
	*s |= 1 << bit
}

// Clear disables the bit corresponding to the given component id.
func (s *Signature) Clear(bit ComponentID) {
	*s &^= 1 << bit
}

// Test reports whether the bit for the given component id is set.
func (s Signature) Test(bit ComponentID) bool {
	return s&(1<<bit) != 0
}

// ContainsAll checks if all the bits set in `sub` are also set in the
// receiver. This is how an entity's signature is matched against a
// system's required signature: the zero Signature is contained by
// everything, so a system that never set a requirement matches every
// entity trivially.
func (s Signature) ContainsAll(sub Signature) bool {
	return s&sub == sub
}

// IsZero reports whether no bit is set.
func (s Signature) IsZero() bool {
	return s == 0
}
