// Package field defines the pluggable unit of the epochal framework: a
// named, range-bounded, unit-typed accessor into a calendrical value, plus
// the built-in Julian family (Julian Day Number, Modified Julian Day,
// Rata Die).
//
// What:
//
//   - Field is the contract every field kind satisfies: Get/Set/Roll against
//     a calendrical, Resolve against accumulated builder state, Compare, and
//     the declared ValueRange.
//   - OffsetField is the data-driven family of fields whose value is the
//     canonical epoch-day shifted by a fixed constant. New families register
//     an offset + name pair; there is no central switch to extend.
//   - State and Resolution form the resolver side of the protocol: a
//     resolver is a pure function of accumulated state producing a canonical
//     date plus the entries it consumed. The builder driver — never the
//     field — owns the fixpoint loop and conflict detection.
//
// Why:
//
//   - Dozens of calendar systems express the same instant through different
//     numbers. Anchoring each as an affine offset from one canonical
//     timeline makes them mutually convertible with two checked additions.
//
// Built-in offsets (interoperability constants, bit-exact):
//
//   - JulianDay:          2440588
//   - ModifiedJulianDay:  40587
//   - RataDie:            719163
//
// Errors:
//
//   - ErrInvalidFieldValue: a value outside the field's declared range.
//   - ErrFieldExtraction: no canonical date and no raw entry available.
//   - ErrDuplicateField: a second registration under an existing name.
//
// AI-Hints:
//
//   - Register a new day-based family with RegisterOffsetField(name, offset);
//     its range is derived from the canonical range and checked for overflow
//     once, at registration.
//   - Branch on failures with errors.Is; extraction errors name both the
//     field and the calendrical kind.
package field
