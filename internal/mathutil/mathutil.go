// Package mathutil holds small arithmetic helpers shared by the
// collection packages.
package mathutil

// Clamp bounds v to [lo, hi]. When the bounds cross (hi < lo) the lower
// bound wins, so the result is never below lo.
func Clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CeilDiv returns ceil(a / b) for positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
