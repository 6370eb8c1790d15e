// SPDX-License-Identifier: MIT
// Package: epochal/field
//
// types.go — the Field contract, the resolver-side State/Resolution protocol
// and the package's sentinel errors.

package field

import (
	"errors"

	"github.com/katalvlaran/epochal/core"
)

// Sentinel errors for field operations.
var (
	// ErrInvalidFieldValue indicates a value outside a field's declared
	// range was passed to Set (or found during Resolve). No mutation occurs.
	ErrInvalidFieldValue = errors.New("field: value out of range")

	// ErrFieldExtraction indicates neither a canonical date nor a raw
	// accumulated entry was available to satisfy Get.
	ErrFieldExtraction = errors.New("field: unable to obtain value from calendrical")

	// ErrDuplicateField indicates a field registration under a name that is
	// already taken within the registry.
	ErrDuplicateField = errors.New("field: name already registered")

	// ErrEmptyFieldName indicates a registration with an empty display name.
	ErrEmptyFieldName = errors.New("field: name is empty")
)

// State is a read-only view of a builder's accumulated raw field values.
// Resolvers read their own entries through it; they never mutate it.
type State interface {
	// Value returns the raw accumulated value for f, if present.
	Value(f Field) (int64, bool)
}

// StateCarrier is the capability of exposing accumulated raw field values.
// A builder implements it so Get can fall back to raw entries when no
// canonical date is derivable yet.
type StateCarrier interface {
	core.Calendrical

	// FieldState returns the current accumulated state.
	FieldState() State
}

// Resolution is the outcome of a successful resolve step: the canonical date
// implied by the consumed entries. Consumption is all-or-nothing per entry;
// the builder driver applies the Resolution (inserts the date, deletes the
// consumed keys) and detects conflicts between resolutions.
type Resolution struct {
	// Date is the canonical date the consumed entries imply.
	Date core.Date

	// Consumed lists the fields whose raw entries the resolution used up.
	Consumed []Field
}

// Field is a named, range-bounded, unit-typed accessor into a calendrical
// value. Implementations are immutable process-wide singletons, safe to
// share across goroutines.
type Field interface {
	// Name returns the display identifier, unique within the registry.
	Name() string

	// BaseUnit returns the granularity the field is measured in.
	BaseUnit() core.Unit

	// RangeUnit returns the cycle the field's value ranges over.
	RangeUnit() core.Unit

	// ValueRange returns the inclusive bounds of legal values, wide enough
	// for every value reachable from the canonical range and no wider.
	ValueRange() core.ValueRange

	// RangeFor returns the legal range in the context of c. For day-based
	// offset fields the range is context-free and equals ValueRange.
	RangeFor(c core.Calendrical) core.ValueRange

	// Get extracts this field's value from c: first via the canonical date
	// (DateCarrier), then via raw accumulated state (StateCarrier).
	//
	// Errors:
	//   - ErrFieldExtraction (wrapping field name and calendrical kind)
	//     if neither path yields a value.
	//   - core.ErrArithmeticOverflow if the offset computation overflows.
	Get(c core.Calendrical) (int64, error)

	// Set returns c rebuilt around the canonical date implied by v.
	// c must support the DateWither capability.
	//
	// Errors:
	//   - ErrInvalidFieldValue if v is outside ValueRange.
	//   - core.ErrArithmeticOverflow if the offset subtraction overflows.
	//   - ErrFieldExtraction if c cannot be rebuilt from a date.
	Set(c core.Calendrical, v int64) (core.Calendrical, error)

	// Roll returns c with this field shifted by amount, wrapping within the
	// day cycle of the underlying civil month (rolling never changes the
	// month, only the day within it).
	Roll(c core.Calendrical, amount int64) (core.Calendrical, error)

	// Resolve attempts to convert this field's own raw entry in s into a
	// canonical date. ok reports progress; a second call after consumption
	// finds no entry and reports false (idempotence). Resolve reads only
	// this field's entries and never mutates s.
	Resolve(s State) (res Resolution, ok bool, err error)

	// Compare orders a against b by this field's value, as the sign of
	// Get(a) versus Get(b) under overflow-safe comparison.
	Compare(a, b core.Calendrical) (int, error)
}
