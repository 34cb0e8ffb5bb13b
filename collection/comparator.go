package collection

import "golang.org/x/exp/constraints"

// Compare is a three-way comparator: negative when a < b, zero when a == b,
// positive when a > b. Every ordered container takes one at construction;
// total ordering over the element type is assumed.
type Compare[T any] func(a, b T) int

// Ordered returns the natural comparator for any ordered primitive type.
func Ordered[T constraints.Ordered]() Compare[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}
