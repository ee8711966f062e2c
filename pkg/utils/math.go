// pkg/utils/math.go
package utils

import "cmp"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IsEven reports whether |x| is even.
func IsEven(x int) bool {
	return Abs(x)%2 == 0
}

// Clamp keeps value between lo and hi, both inclusive.
func Clamp[T cmp.Ordered](lo, value, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
