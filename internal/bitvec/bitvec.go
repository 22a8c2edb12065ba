// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a bit vector type used to track
// sets of small indices (e.g., the nodes visited while
// walking an imported hierarchy).
package bitvec

import (
	"math/bits"
	"unsafe"
)

// Uint represents the granularity of a bit vector.
type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// V is a growable bit vector with custom granularity.
// The zero value is an empty vector.
type V[T Uint] struct {
	s   []T
	rem int
}

// nbit returns the number of bits in T.
func (*V[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits in the vector.
func (v *V[_]) Len() int { return len(v.s) * v.nbit() }

// Rem returns the number of unset bits in the vector.
func (v *V[_]) Rem() int { return v.rem }

// Grow resizes the vector to contain nplus additional Uints.
// The new extent is appended as a range of unset bits.
// It returns the value of v.Len prior to appending the new
// extent.
// It is valid to call this method with any value of nplus.
func (v *V[T]) Grow(nplus int) (index int) {
	index = v.Len()
	if nplus > 0 {
		v.rem += nplus * v.nbit()
		v.s = append(v.s, make([]T, nplus)...)
	}
	return
}

// Fit grows the vector as needed so that the bits in
// the range [0, n) are valid indices.
func (v *V[T]) Fit(n int) {
	nb := v.nbit()
	v.Grow((n+nb-1)/nb - len(v.s))
}

// Set sets a given bit.
// It returns whether the bit was unset.
func (v *V[T]) Set(index int) bool {
	n := v.nbit()
	i := index / n
	b := T(1) << (index & (n - 1))
	if v.s[i]&b == 0 {
		v.s[i] |= b
		v.rem--
		return true
	}
	return false
}

// IsSet checks whether a given bit is set.
func (v *V[T]) IsSet(index int) bool {
	n := v.nbit()
	return v.s[index/n]&(T(1)<<(index&(n-1))) != 0
}

// Search returns the lowest unset bit in the vector.
// It fails only when v.Rem() == 0.
func (v *V[T]) Search() (index int, ok bool) {
	if v.rem == 0 {
		return 0, false
	}
	for i, x := range v.s {
		if x != ^T(0) {
			return i*v.nbit() + bits.TrailingZeros64(uint64(^x)), true
		}
	}
	return 0, false
}

// Clear unsets every bit without shrinking the vector.
func (v *V[T]) Clear() {
	clear(v.s)
	v.rem = v.Len()
}
