// Package epochal is a canonical, extensible representation of calendar
// dates: many equivalent field representations of the same instant — Julian
// Day Number, Modified Julian Day, Rata Die, and any family you register —
// reconciled against a single integer timeline of days since 1970-01-01.
//
// 🚀 What is epochal?
//
//	A small, thread-friendly framework built from four pieces:
//		• core/    — the canonical Date (one epoch-day integer), ValueRange
//		             bounds, overflow-checked arithmetic and the capability
//		             protocol every calendrical value speaks
//		• field/   — named, range-bounded accessors (get/set/roll/resolve)
//		             with the built-in Julian family and a data-driven
//		             registry for new ones
//		• builder/ — the resolution engine: accumulate partial field values
//		             from heterogeneous sources, drive them to a fixpoint,
//		             get the one date they agree on — or a named conflict
//		• zone/    — time-zone identifiers as pure values with lazily bound,
//		             memoized rules providers and a bit-exact wire form
//
// ✨ Why choose epochal?
//
//   - Deterministic – resolution order never changes the answer; conflicts
//     are errors, not silent preferences
//   - Overflow-safe – every offset computation is checked; out-of-range
//     values are rejected at the field boundary
//   - Extensible – a new day-count field is one registration call, not a
//     new switch branch
//   - Pure Go – no cgo, no I/O in the core, immutable values throughout
//
// Quick taste:
//
//	b := builder.New()
//	_ = b.Set(field.JulianDay, 2440588)
//	_ = b.Set(field.RataDie, 719163)
//	d, err := b.Resolve() // 1970-01-01, or ErrConflictingFieldValues
//
// The datecalc CLI under cmd/ wraps the same operations for the shell.
//
//	go get github.com/katalvlaran/epochal
package epochal
