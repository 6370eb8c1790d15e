// SPDX-License-Identifier: MIT
// Package: epochal/field
//
// offset.go — OffsetField, the affine family: value = epochDay + offset.
// The three Julian variants are pre-registered singletons; further families
// register an offset and a name, no switch statements to extend.

package field

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/epochal/core"
)

// Fixed per-field offsets from the canonical epoch (1970-01-01 = day 0).
// Interoperability constants; any persisted field value depends on them.
const (
	// OffsetJulianDay anchors the Julian Day Number, counting whole days
	// from -4713-11-24 (ISO proleptic Gregorian).
	OffsetJulianDay int64 = 2440588

	// OffsetModifiedJulianDay anchors the Modified Julian Day, the Julian
	// Day minus 2400000.5 with days starting at midnight.
	OffsetModifiedJulianDay int64 = 40587

	// OffsetRataDie anchors Rata Die, counting whole days with day 1 at
	// 0001-01-01 (ISO).
	OffsetRataDie int64 = 719163
)

// Built-in day-based fields. Process-wide immutable singletons.
var (
	// JulianDay is the integer Julian Day Number, JDN = floor(JD), counted
	// from midnight rather than the astronomical midday.
	JulianDay = mustRegisterOffsetField("JulianDay", OffsetJulianDay)

	// ModifiedJulianDay is the whole-day Modified Julian Day.
	ModifiedJulianDay = mustRegisterOffsetField("ModifiedJulianDay", OffsetModifiedJulianDay)

	// RataDie is the Rata Die whole-day count.
	RataDie = mustRegisterOffsetField("RataDie", OffsetRataDie)
)

// OffsetField is a field whose value is the canonical epoch-day shifted by a
// fixed constant. Immutable after registration.
type OffsetField struct {
	name   string
	offset int64
	vr     core.ValueRange
}

// registry holds every registered field by name so lookups (parsers, CLIs)
// and duplicate detection stay data-driven.
var registry = struct {
	mu     sync.RWMutex
	byName map[string]Field
}{byName: make(map[string]Field)}

// RegisterOffsetField registers a new day-based field family defined by its
// fixed offset from the canonical epoch. The field's value range is derived
// as the supported canonical range shifted by the offset, overflow-checked
// once here so no in-range value can ever overflow later.
//
// Errors:
//   - ErrEmptyFieldName, ErrDuplicateField on registry violations.
//   - core.ErrArithmeticOverflow if the shifted range leaves int64.
func RegisterOffsetField(name string, offset int64) (*OffsetField, error) {
	if name == "" {
		return nil, ErrEmptyFieldName
	}
	min, err := core.SafeAdd(core.MinEpochDay, offset)
	if err != nil {
		return nil, fmt.Errorf("field %s: range lower bound: %w", name, err)
	}
	max, err := core.SafeAdd(core.MaxEpochDay, offset)
	if err != nil {
		return nil, fmt.Errorf("field %s: range upper bound: %w", name, err)
	}
	vr, err := core.NewValueRange(min, max)
	if err != nil {
		return nil, err
	}

	f := &OffsetField{name: name, offset: offset, vr: vr}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}
	registry.byName[name] = f

	return f, nil
}

func mustRegisterOffsetField(name string, offset int64) *OffsetField {
	f, err := RegisterOffsetField(name, offset)
	if err != nil {
		panic(err)
	}

	return f
}

// Lookup returns the registered field with the given name.
func Lookup(name string) (Field, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	f, ok := registry.byName[name]

	return f, ok
}

// Registered returns every registered field, sorted by name.
func Registered() []Field {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]Field, 0, len(registry.byName))
	for _, f := range registry.byName {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out
}

//-----------------------------------------------------------------------

// Name returns the field's display identifier.
func (f *OffsetField) Name() string { return f.name }

// Offset returns the fixed shift from the canonical epoch.
func (f *OffsetField) Offset() int64 { return f.offset }

// BaseUnit reports that the field is measured in whole days.
func (f *OffsetField) BaseUnit() core.Unit { return core.UnitDays }

// RangeUnit reports that the field ranges over no larger cycle.
func (f *OffsetField) RangeUnit() core.Unit { return core.UnitForever }

// ValueRange returns the inclusive bounds of legal values.
func (f *OffsetField) ValueRange() core.ValueRange { return f.vr }

// RangeFor returns ValueRange; offset fields are context-free.
func (f *OffsetField) RangeFor(core.Calendrical) core.ValueRange { return f.vr }

// Get extracts the field's value from c. The canonical-date path computes
// epochDay + offset; the fallback reads the raw accumulated entry.
func (f *OffsetField) Get(c core.Calendrical) (int64, error) {
	if dc, ok := c.(core.DateCarrier); ok {
		if d, has := dc.EpochDate(); has {
			return core.SafeAdd(d.EpochDay(), f.offset)
		}
	}
	if sc, ok := c.(StateCarrier); ok {
		if v, has := sc.FieldState().Value(f); has {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %s from %s", ErrFieldExtraction, f.name, core.KindOf(c))
}

// Set validates v against the declared range, derives the canonical date
// (epochDay = v - offset, overflow-checked) and rebuilds c around it.
func (f *OffsetField) Set(c core.Calendrical, v int64) (core.Calendrical, error) {
	if !f.vr.Contains(v) {
		return nil, fmt.Errorf("%w: %s = %d, legal %s", ErrInvalidFieldValue, f.name, v, f.vr)
	}
	d, err := f.dateOf(v)
	if err != nil {
		return nil, err
	}
	w, ok := c.(core.DateWither)
	if !ok {
		return nil, fmt.Errorf("%w: %s into %s", ErrFieldExtraction, f.name, core.KindOf(c))
	}

	return w.WithEpochDate(d)
}

// Roll shifts the field by amount, wrapping within the month of the
// underlying civil date: rolling past the last day re-enters at the first.
// All day-based fields share this cycle, so rolling a Julian Day by +1 on
// the last day of a month lands on the first day of the same month.
func (f *OffsetField) Roll(c core.Calendrical, amount int64) (core.Calendrical, error) {
	dc, ok := c.(core.DateCarrier)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrFieldExtraction, f.name, core.KindOf(c))
	}
	d, has := dc.EpochDate()
	if !has {
		return nil, fmt.Errorf("%w: %s from %s", ErrFieldExtraction, f.name, core.KindOf(c))
	}
	w, ok := c.(core.DateWither)
	if !ok {
		return nil, fmt.Errorf("%w: %s into %s", ErrFieldExtraction, f.name, core.KindOf(c))
	}

	rolled, err := rollDayOfMonth(d, amount)
	if err != nil {
		return nil, err
	}

	return w.WithEpochDate(rolled)
}

// Resolve converts this field's own raw entry into a canonical date,
// all-or-nothing. A consumed entry is gone from the state, so the second
// invocation finds nothing and reports no progress.
func (f *OffsetField) Resolve(s State) (Resolution, bool, error) {
	v, has := s.Value(f)
	if !has {
		return Resolution{}, false, nil
	}
	if !f.vr.Contains(v) {
		return Resolution{}, false, fmt.Errorf("%w: %s = %d, legal %s", ErrInvalidFieldValue, f.name, v, f.vr)
	}
	d, err := f.dateOf(v)
	if err != nil {
		return Resolution{}, false, err
	}

	return Resolution{Date: d, Consumed: []Field{f}}, true, nil
}

// Compare orders a against b by this field's value without subtraction.
func (f *OffsetField) Compare(a, b core.Calendrical) (int, error) {
	va, err := f.Get(a)
	if err != nil {
		return 0, err
	}
	vb, err := f.Get(b)
	if err != nil {
		return 0, err
	}

	return core.SafeCompare(va, vb), nil
}

// CreateDate builds a canonical date directly from a value of this field.
//
// Errors:
//   - ErrInvalidFieldValue if value is outside the declared range.
func (f *OffsetField) CreateDate(value int64) (core.Date, error) {
	if !f.vr.Contains(value) {
		return core.Date{}, fmt.Errorf("%w: %s = %d, legal %s", ErrInvalidFieldValue, f.name, value, f.vr)
	}

	return f.dateOf(value)
}

// String returns the field name.
func (f *OffsetField) String() string { return f.name }

// dateOf maps an in-range field value to its canonical date.
func (f *OffsetField) dateOf(v int64) (core.Date, error) {
	epoch, err := core.SafeSubtract(v, f.offset)
	if err != nil {
		return core.Date{}, err
	}

	return core.OfEpochDay(epoch)
}

// rollDayOfMonth wraps the day-of-month of d by amount within its month.
func rollDayOfMonth(d core.Date, amount int64) (core.Date, error) {
	y, m, day := d.YMD()
	n := int64(core.DaysInMonth(y, m))
	rolled := int(mod(int64(day-1)+amount%n+n, n)) + 1

	return core.FromYMD(y, m, rolled)
}

// mod is the floor modulus for a non-negative-result wrap.
func mod(a, n int64) int64 {
	return ((a % n) + n) % n
}
