package selection

import (
	"math"
	"strconv"
	"strings"
)

// Bound maps a candidate index onto a list of n items. With wrapping the
// candidate is taken modulo n (never negative); without, it is clamped to
// [0, n-1]. It returns -1 when n is zero.
func Bound(candidate, n int, wraps bool) int {
	if n <= 0 {
		return -1
	}
	if wraps {
		return ((candidate % n) + n) % n
	}
	if candidate < 0 {
		return 0
	}
	if candidate > n-1 {
		return n - 1
	}
	return candidate
}

// Normalize returns index if it addresses one of n items, otherwise -1
func Normalize(index, n int) int {
	if index < 0 || index >= n {
		return -1
	}
	return index
}

// CanSelect computes the derived navigation flags for a list of n items
// with the given selected index. With no selection and a nonempty list both
// directions are considered possible.
func CanSelect(n, index int, wraps bool) (next, previous bool) {
	switch {
	case n == 0:
		return false, false
	case wraps:
		return true, true
	case index < 0:
		return true, true
	}
	return index < n-1, index > 0
}

// ParseIndex converts textual index input into an integer index. Anything
// that is not an integral number (including NaN and infinities) becomes -1.
func ParseIndex(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return -1
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return -1
	}
	return int(f)
}
