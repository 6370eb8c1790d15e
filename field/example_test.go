package field_test

import (
	"fmt"

	"github.com/katalvlaran/epochal/core"
	"github.com/katalvlaran/epochal/field"
)

// ExampleOffsetField_Get shows the three built-in Julian variants agreeing
// on the fixed reference date: each value is the epoch-day plus the field's
// offset constant.
func ExampleOffsetField_Get() {
	epoch := core.MustDate(0)

	jd, _ := field.JulianDay.Get(epoch)
	mjd, _ := field.ModifiedJulianDay.Get(epoch)
	rd, _ := field.RataDie.Get(epoch)

	fmt.Println("JulianDay:", jd)
	fmt.Println("ModifiedJulianDay:", mjd)
	fmt.Println("RataDie:", rd)
	// Output:
	// JulianDay: 2440588
	// ModifiedJulianDay: 40587
	// RataDie: 719163
}

// ExampleOffsetField_CreateDate converts a Modified Julian Day value
// straight to a canonical date.
func ExampleOffsetField_CreateDate() {
	d, _ := field.ModifiedJulianDay.CreateDate(40587)

	fmt.Println(d.EpochDay(), d)
	// Output:
	// 0 1970-01-01
}
