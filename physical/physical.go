// Package physical defines the equality, ordering, and hashing semantics for
// the physical value types a column can hold.
//
// Integers keep their native semantics. Floats get a total order and a
// reflexive equivalence relation so that they can participate in sorting,
// grouping, and hashing:
//
//   - Compare orders by the IEEE 754 totalOrder predicate, except that
//     positive and negative zero compare equal. NaNs are ordered by sign and
//     payload (negative NaNs below -Inf, positive NaNs above +Inf).
//   - Equal is true for natively equal values, for values with identical bit
//     patterns (a NaN equals a NaN with the same payload), and for any pair
//     of zeros.
//   - Key maps a value to a canonical 64-bit hash key such that two values
//     share a key exactly when Equal holds. Negative zero normalizes to
//     positive zero; NaN payloads are preserved.
//
// Generic algorithms over columns must compare and hash values through this
// package, never through the native float operators.
package physical

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Compare returns -1, 0, or +1 ordering two native integers.
func Compare[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Equal reports native integer equality.
func Equal[T constraints.Integer](a, b T) bool {
	return a == b
}

// Key returns the canonical hash key of a native integer. Signed values are
// widened with sign extension, so distinct values of one type never collide.
func Key[T constraints.Integer](v T) uint64 {
	return uint64(v)
}

// CompareFloat32 orders two float32 values by totalOrder with ±0.0 equal.
func CompareFloat32(a, b float32) int {
	if a == 0 && b == 0 {
		return 0
	}
	return Compare(orderKey32(a), orderKey32(b))
}

// CompareFloat64 orders two float64 values by totalOrder with ±0.0 equal.
func CompareFloat64(a, b float64) int {
	if a == 0 && b == 0 {
		return 0
	}
	return Compare(orderKey64(a), orderKey64(b))
}

// EqualFloat32 reports bits equality for float32: native equality or
// identical bit patterns. Covers NaN-vs-same-NaN and +0.0 vs -0.0.
func EqualFloat32(a, b float32) bool {
	return a == b || math.Float32bits(a) == math.Float32bits(b)
}

// EqualFloat64 reports bits equality for float64: native equality or
// identical bit patterns. Covers NaN-vs-same-NaN and +0.0 vs -0.0.
func EqualFloat64(a, b float64) bool {
	return a == b || math.Float64bits(a) == math.Float64bits(b)
}

// KeyFloat32 returns the canonical hash key of a float32.
func KeyFloat32(v float32) uint64 {
	if v == 0 {
		return uint64(math.Float32bits(0))
	}
	return uint64(math.Float32bits(v))
}

// KeyFloat64 returns the canonical hash key of a float64.
func KeyFloat64(v float64) uint64 {
	if v == 0 {
		return math.Float64bits(0)
	}
	return math.Float64bits(v)
}

// orderKey32 maps a float32 to a signed key whose native order is the IEEE
// totalOrder of the input: the magnitude bits of negatives are flipped so
// that, compared as signed integers, bigger negatives sort lower.
func orderKey32(f float32) int32 {
	k := int32(math.Float32bits(f))
	k ^= int32(uint32(k>>31) >> 1)
	return k
}

func orderKey64(f float64) int64 {
	k := int64(math.Float64bits(f))
	k ^= int64(uint64(k>>63) >> 1)
	return k
}

// Ops bundles the kernel functions for one physical type, so that a generic
// column implementation can be instantiated once per kind and dispatch
// without reflection.
type Ops[T any] struct {
	Compare func(a, b T) int
	Equal   func(a, b T) bool
	Key     func(v T) uint64
}

// OrderedOps returns the kernel for a native integer type.
func OrderedOps[T constraints.Integer]() Ops[T] {
	return Ops[T]{
		Compare: Compare[T],
		Equal:   Equal[T],
		Key:     Key[T],
	}
}

// Float32Ops returns the kernel for float32.
func Float32Ops() Ops[float32] {
	return Ops[float32]{
		Compare: CompareFloat32,
		Equal:   EqualFloat32,
		Key:     KeyFloat32,
	}
}

// Float64Ops returns the kernel for float64.
func Float64Ops() Ops[float64] {
	return Ops[float64]{
		Compare: CompareFloat64,
		Equal:   EqualFloat64,
		Key:     KeyFloat64,
	}
}
