// SPDX-License-Identifier: MIT
// Package: epochal/core
//
// civil.go — proleptic-Gregorian <-> epoch-day conversion. The algorithms
// work on 400-year eras (146097 days each) and are exact over the whole
// supported range; all intermediate products fit int64 comfortably.

package core

import "time"

const (
	daysPerEra  int64 = 146097 // days in one 400-year Gregorian era
	yearsPerEra int64 = 400
	epochShift  int64 = 719468 // days from 0000-03-01 to 1970-01-01
)

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year (29 for February in leap years).
func DaysInMonth(year int64, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}

		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// daysFromCivil converts a proleptic-Gregorian (year, month, day) to an
// epoch-day count. Inputs must already be validated.
func daysFromCivil(year, month, day int64) int64 {
	if month <= 2 {
		year--
	}
	era := floorDiv(year, yearsPerEra)
	yoe := year - era*yearsPerEra // [0, 399]
	var mp int64
	if month > 2 {
		mp = month - 3
	} else {
		mp = month + 9
	}
	doy := (153*mp+2)/5 + day - 1          // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]

	return era*daysPerEra + doe - epochShift
}

// civilFromDays converts an epoch-day count to a proleptic-Gregorian
// (year, month, day).
func civilFromDays(epochDay int64) (year, month, day int64) {
	z := epochDay + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*yearsPerEra
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		month = mp + 3
	} else {
		month = mp - 9
	}
	if month <= 2 {
		y++
	}

	return y, month, day
}
