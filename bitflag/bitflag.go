// Package bitflag wraps a fixed-width unsigned integer with bit set
// operations. Containers use it to pack per-node boolean properties
// (e.g. the red-black color bit) into a single word.
package bitflag

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Flag is a bit set over an unsigned integer of any width.
// The zero value has no bits set.
type Flag[T constraints.Unsigned] struct {
	bits T
}

// Convenience aliases for the common widths.
type (
	Flag8  = Flag[uint8]
	Flag16 = Flag[uint16]
	Flag32 = Flag[uint32]
	Flag64 = Flag[uint64]
)

// New returns a Flag seeded with the given bits.
func New[T constraints.Unsigned](initial T) Flag[T] {
	return Flag[T]{bits: initial}
}

// Set turns on every bit in mask.
func (f *Flag[T]) Set(mask T) { f.bits |= mask }

// Unset turns off every bit in mask.
func (f *Flag[T]) Unset(mask T) { f.bits &^= mask }

// Toggle flips every bit in mask.
func (f *Flag[T]) Toggle(mask T) { f.bits ^= mask }

// Has reports whether every bit in mask is set.
func (f Flag[T]) Has(mask T) bool { return f.bits&mask == mask }

// HasAny reports whether at least one bit in mask is set.
func (f Flag[T]) HasAny(mask T) bool { return f.bits&mask != 0 }

// At reports the bit at the given position, LSB first.
func (f Flag[T]) At(pos uint) bool { return f.bits&(1<<pos) != 0 }

// Value returns the underlying integer.
func (f Flag[T]) Value() T { return f.bits }

// Clear resets every bit.
func (f *Flag[T]) Clear() { f.bits = 0 }

// String renders the bits MSB-first, zero padded to the integer's width.
func (f Flag[T]) String() string {
	w := width[T]()
	s := strconv.FormatUint(uint64(f.bits), 2)
	if len(s) < w {
		s = strings.Repeat("0", w-len(s)) + s
	}
	return s
}

// width counts the bits of T.
func width[T constraints.Unsigned]() int {
	n := 0
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}
