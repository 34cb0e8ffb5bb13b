package collection

// Match is the outcome of a search. When Found is false, Data and Index are
// zero values and must not be read.
type Match[T any] struct {
	// Found reports whether the search succeeded.
	Found bool

	// Data is the matching element.
	Data T

	// Index is the element's position under the container's natural order,
	// when the container tracks one; -1 when position is not computed.
	Index int
}

// Found builds a successful Match.
func FoundMatch[T any](data T, index int) Match[T] {
	return Match[T]{Found: true, Data: data, Index: index}
}

// NoMatch builds a failed Match.
func NoMatch[T any]() Match[T] {
	return Match[T]{Index: -1}
}
