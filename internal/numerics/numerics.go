// Package numerics provides overflow-checked integer arithmetic for the
// region addressing computations.
//
// Array geometry is computed in int64 and a single wrapped product can
// silently corrupt every later offset, so every addition and multiplication
// on the addressing path reports whether it stayed in range instead of
// wrapping. Callers translate a false result into their own overflow error.
package numerics

import "math"

// Add returns a+b and whether the sum is representable in int64.
func Add(a, b int64) (int64, bool) {
	sum := a + b
	// Overflow iff both operands share a sign that the sum does not.
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, false
	}
	return sum, true
}

// Mul returns a*b and whether the product is representable in int64.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	if a == -1 && b == math.MinInt64 || b == -1 && a == math.MinInt64 {
		return 0, false
	}
	return p, true
}

// CeilDiv returns the smallest integer >= n/d for positive n and d.
// The divide-then-round form cannot overflow, unlike (n+d-1)/d.
func CeilDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// FitsInt32 reports whether v lies in the 32-bit signed range. Per-axis
// element counts and single bulk-transfer lengths are held to this range
// even though addressing itself is 64-bit.
func FitsInt32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
