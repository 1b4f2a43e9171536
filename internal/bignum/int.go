// Package bignum provides the arbitrary-precision magnitude type that the
// runtime's BIGINT arena allocates and duplicates. It intentionally does
// not implement arithmetic: per the runtime's scope, numeric operations on
// big integers are an external collaborator's concern (the reference
// implementation hands this to GMP). This package only owns storage,
// duplication (for GC copy and cross-VM deep copy) and decimal formatting.
package bignum

// Int is an arbitrary-precision magnitude: Neg is the sign, Limbs holds
// the magnitude in base 2^32, little-endian (Limbs[0] is the
// least-significant limb). A zero value has Limbs == nil and Neg ==
// false.
type Int struct {
	Neg   bool
	Limbs []uint32
}

// FromInt64 builds an Int from a native signed integer.
func FromInt64(n int64) Int {
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	return Int{Neg: neg && u != 0, Limbs: limbsFromUint64(u)}
}

func limbsFromUint64(u uint64) []uint32 {
	if u == 0 {
		return nil
	}
	lo := uint32(u)
	hi := uint32(u >> 32)
	if hi == 0 {
		return []uint32{lo}
	}
	return []uint32{lo, hi}
}

// IsZero reports whether the magnitude is zero.
func (x Int) IsZero() bool { return len(x.Limbs) == 0 }

// Dup returns a deep copy of x, independent of x's backing array. This is
// what the heap's BIGINT copy rule (GC relocation and cross-VM deep copy)
// calls instead of aliasing the slice.
func Dup(x Int) Int {
	if len(x.Limbs) == 0 {
		return Int{}
	}
	limbs := make([]uint32, len(x.Limbs))
	copy(limbs, x.Limbs)
	return Int{Neg: x.Neg, Limbs: limbs}
}
