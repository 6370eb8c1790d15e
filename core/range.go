// SPDX-License-Identifier: MIT
// Package: epochal/core
//
// range.go — ValueRange, the inclusive [min, max] bound a field declares for
// its legal values. Immutable, value-equality, no mutation after construction.

package core

import "fmt"

// ValueRange is an inclusive bound for a field's legal int64 values.
// The zero value is the degenerate range [0, 0]; construct real ranges with
// NewValueRange so the min <= max invariant is enforced.
type ValueRange struct {
	min int64
	max int64
}

// NewValueRange constructs the inclusive range [min, max].
// Complexity: O(1).
//
// Errors:
//   - ErrInvalidRange if min > max.
func NewValueRange(min, max int64) (ValueRange, error) {
	if min > max {
		return ValueRange{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}

	return ValueRange{min: min, max: max}, nil
}

// MustValueRange is NewValueRange that panics on invalid bounds.
// Reserved for package-level constants where the bounds are compile-time
// facts; runtime code uses NewValueRange.
func MustValueRange(min, max int64) ValueRange {
	vr, err := NewValueRange(min, max)
	if err != nil {
		panic(err)
	}

	return vr
}

// Min returns the smallest legal value.
func (vr ValueRange) Min() int64 { return vr.min }

// Max returns the largest legal value.
func (vr ValueRange) Max() int64 { return vr.max }

// Contains reports whether min <= v <= max. Pure predicate.
func (vr ValueRange) Contains(v int64) bool {
	return vr.min <= v && v <= vr.max
}

// String renders the range as "[min, max]".
func (vr ValueRange) String() string {
	return fmt.Sprintf("[%d, %d]", vr.min, vr.max)
}
