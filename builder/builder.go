// SPDX-License-Identifier: MIT
// Package: epochal/builder
//
// builder.go — the Builder state machine and its fixpoint driver.
//
// Design contract (strict):
//   - One driver: Resolve owns the loop and the conflict detection; field
//     resolvers are pure functions of the accumulated state.
//   - Deterministic scan order (fields sorted by name) per pass; the final
//     date is order-independent because resolvers are self-contained.
//   - Entry consumption is all-or-nothing per field; a consumed entry is
//     deleted, which is what makes a repeated Resolve a no-op.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/epochal/core"
	"github.com/katalvlaran/epochal/field"
)

// Phase is the lifecycle state of a Builder.
type Phase uint8

const (
	// Accumulating: raw entries may still be added, no contradiction seen.
	Accumulating Phase = iota

	// Resolving: the driver loop is (or was) running resolvers.
	Resolving

	// Resolved: a canonical date is present; terminal.
	Resolved

	// Contradiction: two resolutions disagreed; terminal failure.
	Contradiction
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case Accumulating:
		return "Accumulating"
	case Resolving:
		return "Resolving"
	case Resolved:
		return "Resolved"
	case Contradiction:
		return "Contradiction"
	default:
		return "Unknown"
	}
}

// dateSourceCalendrical names the source of a date added via AddDate in
// conflict diagnostics, where no field is involved.
const dateSourceCalendrical = "calendrical"

// entry is one accumulated raw field value.
type entry struct {
	f field.Field
	v int64
}

// Builder accumulates raw field values and already-resolved calendricals,
// then drives them to a single canonical date. Create one per operation;
// not safe for concurrent use.
type Builder struct {
	phase      Phase
	entries    map[string]entry
	date       core.Date
	hasDate    bool
	dateSource string // field name (or dateSourceCalendrical) that set date
}

// New creates an empty Builder in the Accumulating phase. Complexity: O(1).
func New() *Builder {
	return &Builder{entries: make(map[string]entry)}
}

// Set records a raw value for f. Setting the same field again overwrites the
// previous value (last write wins for that field only).
//
// Errors:
//   - ErrNilField for a nil field.
//   - ErrBuilderFinished after a terminal phase.
func (b *Builder) Set(f field.Field, v int64) error {
	if f == nil {
		return ErrNilField
	}
	if b.finished() {
		return fmt.Errorf("%w: cannot set %s in phase %s", ErrBuilderFinished, f.Name(), b.phase)
	}
	b.entries[f.Name()] = entry{f: f, v: v}

	return nil
}

// AddDate records an already-resolved canonical date. A second date is
// accepted only if it agrees with the first; disagreement is terminal.
//
// Errors:
//   - ErrConflictingFieldValues if a different date is already present.
//   - ErrBuilderFinished after a terminal phase.
func (b *Builder) AddDate(d core.Date) error {
	if b.finished() {
		return fmt.Errorf("%w: cannot add date in phase %s", ErrBuilderFinished, b.phase)
	}
	if b.hasDate && !b.date.Equal(d) {
		b.phase = Contradiction

		return fmt.Errorf("%w: %s (epoch day %d) vs %s (epoch day %d)",
			ErrConflictingFieldValues, b.dateSource, b.date.EpochDay(), dateSourceCalendrical, d.EpochDay())
	}
	if !b.hasDate {
		b.date, b.hasDate, b.dateSource = d, true, dateSourceCalendrical
	}

	return nil
}

// Resolve drives every present field's resolver to a fixpoint and returns
// the canonical date. Unconsumed entries are retained (see Unresolved); they
// are an error only in the sense that a date may remain underivable.
//
// Errors:
//   - ErrConflictingFieldValues if two resolutions disagree (terminal).
//   - ErrInsufficientFieldData if no date is derivable at the fixpoint.
//   - Resolver failures (e.g. field.ErrInvalidFieldValue for an out-of-range
//     raw entry) propagate wrapped, with the builder left in Resolving.
func (b *Builder) Resolve() (core.Date, error) {
	switch b.phase {
	case Contradiction:
		return core.Date{}, fmt.Errorf("%w: builder is contradictory", ErrConflictingFieldValues)
	case Resolved:
		return b.date, nil
	}
	b.phase = Resolving

	for {
		progress, err := b.pass()
		if err != nil {
			return core.Date{}, err
		}
		if !progress {
			break
		}
	}

	if !b.hasDate {
		return core.Date{}, fmt.Errorf("%w: %d field(s) present, no canonical date derivable",
			ErrInsufficientFieldData, len(b.entries))
	}
	b.phase = Resolved

	return b.date, nil
}

// pass runs one full scan over the present fields in name order and applies
// every successful resolution. Reports whether any resolver made progress.
func (b *Builder) pass() (bool, error) {
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	progress := false
	for _, name := range names {
		e, present := b.entries[name]
		if !present {
			// Consumed earlier in this pass by another field's resolution.
			continue
		}

		res, ok, err := e.f.Resolve(b)
		if err != nil {
			return false, fmt.Errorf("resolve %s: %w", name, err)
		}
		if !ok {
			continue
		}
		if err = b.apply(e.f, res); err != nil {
			return false, err
		}
		progress = true
	}

	return progress, nil
}

// apply merges one Resolution into the builder: conflict check first, then
// date insertion and consumption of the used entries.
func (b *Builder) apply(src field.Field, res field.Resolution) error {
	if b.hasDate && !b.date.Equal(res.Date) {
		b.phase = Contradiction

		return fmt.Errorf("%w: %s (epoch day %d) vs %s (epoch day %d)",
			ErrConflictingFieldValues, b.dateSource, b.date.EpochDay(), src.Name(), res.Date.EpochDay())
	}
	if !b.hasDate {
		b.date, b.hasDate, b.dateSource = res.Date, true, src.Name()
	}
	for _, consumed := range res.Consumed {
		delete(b.entries, consumed.Name())
	}

	return nil
}

// Date extracts the canonical date after a successful Resolve.
//
// Errors:
//   - ErrInsufficientFieldData unless the builder is in the Resolved phase.
func (b *Builder) Date() (core.Date, error) {
	if b.phase != Resolved {
		return core.Date{}, fmt.Errorf("%w: builder in phase %s", ErrInsufficientFieldData, b.phase)
	}

	return b.date, nil
}

// Phase returns the builder's lifecycle phase.
func (b *Builder) Phase() Phase { return b.phase }

// Unresolved returns the fields whose raw entries survived the fixpoint,
// sorted by name. Not necessarily an error: they simply carried information
// no resolver could use.
func (b *Builder) Unresolved() []field.Field {
	out := make([]field.Field, 0, len(b.entries))
	for _, e := range b.entries {
		out = append(out, e.f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

// finished reports whether the builder reached a terminal phase.
func (b *Builder) finished() bool {
	return b.phase == Resolved || b.phase == Contradiction
}

//-----------------------------------------------------------------------
// Calendrical capabilities: a Builder is itself a calendrical, so Field.Get
// can read raw entries from it and, once resolved, the date it carries.

// CalendricalKind implements core.Calendrical.
func (b *Builder) CalendricalKind() string { return "epochal.Builder" }

// FieldState implements field.StateCarrier.
func (b *Builder) FieldState() field.State { return b }

// Value implements field.State over the raw entries.
func (b *Builder) Value(f field.Field) (int64, bool) {
	if f == nil {
		return 0, false
	}
	e, ok := b.entries[f.Name()]
	if !ok {
		return 0, false
	}

	return e.v, true
}

// EpochDate implements core.DateCarrier: present once any resolution or
// AddDate produced a date.
func (b *Builder) EpochDate() (core.Date, bool) { return b.date, b.hasDate }
