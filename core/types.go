// SPDX-License-Identifier: MIT
// Package: epochal/core
//
// types.go — sentinel errors, the Unit granularity tags and the calendrical
// capability protocol. Date itself lives in date.go, ValueRange in range.go.
//
// Error policy (strict, shared by every epochal package):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX).

package core

import "errors"

// Sentinel errors for canonical-timeline operations.
var (
	// ErrInvalidRange indicates a ValueRange constructed with min > max.
	ErrInvalidRange = errors.New("core: value range minimum exceeds maximum")

	// ErrArithmeticOverflow indicates an offset computation exceeded the
	// representable int64 domain. Never silently wrapped.
	ErrArithmeticOverflow = errors.New("core: arithmetic overflow")

	// ErrDateOutOfRange indicates an epoch-day outside the supported
	// [MinEpochDay, MaxEpochDay] interval.
	ErrDateOutOfRange = errors.New("core: epoch day out of supported range")

	// ErrInvalidCivilDate indicates a year/month/day combination that does
	// not name an existing calendar day.
	ErrInvalidCivilDate = errors.New("core: invalid civil date")

	// ErrUnsupportedCapability indicates a calendrical value does not expose
	// the capability an operation requires (e.g. it cannot be rebuilt from a
	// canonical date).
	ErrUnsupportedCapability = errors.New("core: calendrical capability not supported")
)

// Unit tags the granularity of a field: what it is measured in (base unit)
// and over what cycle its value ranges (range unit).
type Unit uint8

const (
	// UnitDays marks a field measured in whole days.
	UnitDays Unit = iota

	// UnitForever marks a field whose range is unbounded by any larger cycle.
	UnitForever
)

// String returns the display name of the unit tag.
func (u Unit) String() string {
	switch u {
	case UnitDays:
		return "Days"
	case UnitForever:
		return "Forever"
	default:
		return "Unknown"
	}
}

// Calendrical is any temporal value participating in the extraction
// protocol. Implementations expose further capabilities (DateCarrier,
// DateWither, field.StateCarrier) as optional interfaces discovered by type
// assertion; CalendricalKind names the concrete representation for
// diagnostics only.
type Calendrical interface {
	// CalendricalKind returns a short descriptive type name, e.g.
	// "epochal.Date". Used in error messages, never for dispatch.
	CalendricalKind() string
}

// DateCarrier is the capability of yielding a canonical date.
// The boolean reports whether a date is currently derivable; a partially
// populated accumulator may legitimately answer false.
type DateCarrier interface {
	Calendrical

	// EpochDate returns the canonical date held by this value, if any.
	EpochDate() (Date, bool)
}

// DateWither is the capability of being rebuilt around a new canonical date.
// It is a capability, not an inheritance requirement: a calendrical that
// cannot be rebuilt simply does not implement it.
type DateWither interface {
	Calendrical

	// WithEpochDate returns a copy of this calendrical carrying d.
	WithEpochDate(d Date) (Calendrical, error)
}

// KindOf names c for diagnostics, tolerating nil.
func KindOf(c Calendrical) string {
	if c == nil {
		return "<nil>"
	}

	return c.CalendricalKind()
}
