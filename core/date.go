// SPDX-License-Identifier: MIT
// Package: epochal/core
//
// date.go — Date, the immutable canonical interchange value: one signed
// epoch-day integer counting days since 1970-01-01 (ISO).

package core

import (
	"fmt"
	"time"
)

// Supported canonical-date range. These constants are interoperability
// facts: every built-in field's value range is exactly this interval shifted
// by the field's fixed offset, so persisted field values remain exchangeable
// between implementations.
const (
	// MinEpochDay is the earliest supported epoch-day.
	MinEpochDay int64 = -365243219162

	// MaxEpochDay is the latest supported epoch-day.
	MaxEpochDay int64 = 365241780471
)

// EpochDayRange is the supported canonical-date interval as a ValueRange.
var EpochDayRange = MustValueRange(MinEpochDay, MaxEpochDay)

// Date is a canonical calendar date: a single signed epoch-day count.
// Immutable and safe for concurrent use. The zero value is the epoch itself,
// 1970-01-01.
type Date struct {
	epochDay int64
}

// OfEpochDay constructs a Date from an epoch-day count.
//
// Errors:
//   - ErrDateOutOfRange if d lies outside [MinEpochDay, MaxEpochDay].
func OfEpochDay(d int64) (Date, error) {
	if !EpochDayRange.Contains(d) {
		return Date{}, fmt.Errorf("%w: %d not in %s", ErrDateOutOfRange, d, EpochDayRange)
	}

	return Date{epochDay: d}, nil
}

// MustDate is OfEpochDay that panics on an out-of-range value.
// Reserved for constants and tests where the value is a known fact.
func MustDate(d int64) Date {
	date, err := OfEpochDay(d)
	if err != nil {
		panic(err)
	}

	return date
}

// FromYMD constructs the Date naming the given proleptic-Gregorian calendar
// day. Complexity: O(1).
//
// Errors:
//   - ErrInvalidCivilDate if month or day do not name an existing day.
//   - ErrDateOutOfRange if the day lies outside the supported range.
func FromYMD(year int64, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidCivilDate, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidCivilDate, year, int(month), day)
	}

	return OfEpochDay(daysFromCivil(year, int64(month), int64(day)))
}

// EpochDay returns the canonical epoch-day count.
func (d Date) EpochDay() int64 { return d.epochDay }

// YMD returns the proleptic-Gregorian calendar day this Date names.
func (d Date) YMD() (year int64, month time.Month, day int) {
	y, m, dd := civilFromDays(d.epochDay)

	return y, time.Month(m), int(dd)
}

// AddDays returns the Date n days after d (n may be negative).
//
// Errors:
//   - ErrArithmeticOverflow if the addition leaves the int64 domain.
//   - ErrDateOutOfRange if the result leaves the supported range.
func (d Date) AddDays(n int64) (Date, error) {
	sum, err := SafeAdd(d.epochDay, n)
	if err != nil {
		return Date{}, err
	}

	return OfEpochDay(sum)
}

// Compare returns -1, 0 or +1 ordering d against o by epoch-day.
func (d Date) Compare(o Date) int {
	return SafeCompare(d.epochDay, o.epochDay)
}

// Equal reports whether both dates name the same epoch-day.
func (d Date) Equal(o Date) bool { return d.epochDay == o.epochDay }

// String renders the date as ISO "yyyy-mm-dd" (years beyond four digits keep
// their full width, negative years carry a leading minus).
func (d Date) String() string {
	y, m, dd := d.YMD()

	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), dd)
}

// CalendricalKind implements Calendrical.
func (d Date) CalendricalKind() string { return "epochal.Date" }

// EpochDate implements DateCarrier; a Date always carries itself.
func (d Date) EpochDate() (Date, bool) { return d, true }

// WithEpochDate implements DateWither; rebuilding a Date from a date is the
// replacement itself.
func (d Date) WithEpochDate(nd Date) (Calendrical, error) { return nd, nil }
