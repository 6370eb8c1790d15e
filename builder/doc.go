// Package builder drives field resolution: it accumulates raw
// (field -> value) entries gathered from heterogeneous sources, runs every
// present field's resolver to a fixpoint and produces the single canonical
// date they all agree on — or a conflict naming the fields that disagree.
//
// What:
//
//   - Builder is a mutable, short-lived accumulator: raw entries (one per
//     field, last write wins) plus at most one already-resolved date.
//   - Resolve scans the present fields in deterministic name order, applies
//     each successful Resolution (insert date, delete consumed entries) and
//     re-scans until a full pass makes no progress.
//   - The driver — never the fields — owns the loop and the conflict check:
//     two resolutions disagreeing on the epoch-day terminate the builder in
//     the Contradiction phase.
//
// Lifecycle (phases):
//
//	Accumulating → Resolving → Resolved | Contradiction
//
// Raw entries left after the fixpoint are not an error; they are reported by
// Unresolved and only matter if the caller required a canonical date.
//
// Why:
//
//   - Parsers and user code hand over whatever field values they have; the
//     builder is the one place where partial, redundant or contradictory
//     information is reconciled against the canonical timeline.
//
// Concurrency:
//
//   - A Builder is a single-operation working object. It is NOT safe for
//     concurrent use; create one per resolution and discard it after
//     extracting the result.
//
// Errors:
//
//   - ErrConflictingFieldValues: two resolutions disagree on the epoch-day.
//   - ErrInsufficientFieldData: extraction before a date is derivable.
//   - ErrNilField: Set called with a nil field.
//   - ErrBuilderFinished: mutation after a terminal phase.
package builder
