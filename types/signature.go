package types

import (
	"math/bits"
	"strconv"
	"strings"
)

// SignatureWords is the number of 64-bit words in a Signature.
const SignatureWords = 4

// Signature is a fixed-width bitmask over ComponentIDs: bit i is set iff
// component id i is present. The zero value is the empty signature, which is
// a valid fingerprint (the empty archetype). Signature is comparable and is
// used directly as the archetype map key.
type Signature [SignatureWords]uint64

// NewSignature returns the signature with the given component ids set.
func NewSignature(ids ...ComponentID) Signature {
	var s Signature
	for _, id := range ids {
		s[id/64] |= 1 << (uint(id) % 64)
	}
	return s
}

// Contains reports whether the component id is present.
func (s Signature) Contains(id ComponentID) bool {
	if id < 0 || id >= MaxComponentTypes {
		return false
	}
	return s[id/64]&(1<<(uint(id)%64)) != 0
}

// With returns a copy of the signature with the component id set.
func (s Signature) With(id ComponentID) Signature {
	s[id/64] |= 1 << (uint(id) % 64)
	return s
}

// Without returns a copy of the signature with the component id cleared.
func (s Signature) Without(id ComponentID) Signature {
	s[id/64] &^= 1 << (uint(id) % 64)
	return s
}

// ContainsAll reports whether every bit of other is set in s, i.e. s is a
// superset of other.
func (s Signature) ContainsAll(other Signature) bool {
	for i := 0; i < SignatureWords; i++ {
		if s[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one bit.
func (s Signature) Intersects(other Signature) bool {
	for i := 0; i < SignatureWords; i++ {
		if s[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether no bits are set.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	n := 0
	for i := 0; i < SignatureWords; i++ {
		n += bits.OnesCount64(s[i])
	}
	return n
}

// Bits returns the set component ids in ascending order.
func (s Signature) Bits() []ComponentID {
	ids := make([]ComponentID, 0, s.Count())
	for w := 0; w < SignatureWords; w++ {
		word := s[w]
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			ids = append(ids, ComponentID(w*64+bit))
			word &= word - 1
		}
	}
	return ids
}

// String renders the signature as a comma separated id list, e.g. "{0,2,5}".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.Bits() {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')
	return b.String()
}
