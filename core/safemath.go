// SPDX-License-Identifier: MIT
// Package: epochal/core
//
// safemath.go — overflow-checked int64 arithmetic. Every per-field offset
// computation in the framework goes through these helpers; overflow is
// reported, never wrapped around.

package core

import (
	"fmt"
	"math"
)

// SafeAdd returns a + b, failing with ErrArithmeticOverflow when the sum
// leaves the int64 domain. Complexity: O(1).
func SafeAdd(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, a, b)
	}

	return a + b, nil
}

// SafeSubtract returns a - b, failing with ErrArithmeticOverflow when the
// difference leaves the int64 domain. Complexity: O(1).
func SafeSubtract(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrArithmeticOverflow, a, b)
	}

	return a - b, nil
}

// SafeCompare returns -1, 0 or +1 as a is less than, equal to or greater
// than b. Implemented with comparisons, not subtraction, so it is exact for
// the full int64 domain.
func SafeCompare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// floorDiv returns the floor of a / b for positive b, rounding toward
// negative infinity rather than toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
