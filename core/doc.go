// Package core defines the canonical timeline and the leaf value types of the
// epochal framework: Date (an immutable epoch-day count), ValueRange
// (inclusive long-integer bounds), Unit (granularity tags) and the
// overflow-checked arithmetic every field conversion is built on.
//
// What:
//
//   - Date wraps a single signed epoch-day integer — the number of days since
//     1970-01-01 (ISO). Two dates are equal iff their epoch-day integers are
//     equal; ordering is integer ordering.
//   - ValueRange is an inclusive [min, max] bound with a pure validity
//     predicate; it is the vocabulary fields use to declare legal values.
//   - SafeAdd / SafeSubtract / SafeCompare provide the overflow-safe int64
//     arithmetic mandated for every offset computation.
//   - Calendrical, DateCarrier and DateWither form the extraction protocol:
//     explicit optional capabilities queried by type assertion, never by
//     reflection.
//
// Why:
//
//   - Every supported field — Julian Day, Modified Julian Day, Rata Die and
//     any family registered later — converts to and from this one integer
//     timeline; agreement on the epoch-day is what makes heterogeneous field
//     values combinable.
//
// Errors:
//
//   - ErrInvalidRange: ValueRange constructed with min > max.
//   - ErrArithmeticOverflow: an offset computation left the int64 domain.
//   - ErrDateOutOfRange: an epoch-day outside [MinEpochDay, MaxEpochDay].
//   - ErrInvalidCivilDate: a year/month/day triple that names no real day.
//
// Concurrency:
//
//   - Every type in this package is immutable after construction and safe to
//     share across goroutines without synchronization.
package core
