package core_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/epochal/core"
	"github.com/stretchr/testify/require"
)

func TestOfEpochDay_Boundaries(t *testing.T) {
	min, err := core.OfEpochDay(core.MinEpochDay)
	require.NoError(t, err)
	require.Equal(t, core.MinEpochDay, min.EpochDay())

	max, err := core.OfEpochDay(core.MaxEpochDay)
	require.NoError(t, err)
	require.Equal(t, core.MaxEpochDay, max.EpochDay())

	_, err = core.OfEpochDay(core.MinEpochDay - 1)
	require.ErrorIs(t, err, core.ErrDateOutOfRange)
	_, err = core.OfEpochDay(core.MaxEpochDay + 1)
	require.ErrorIs(t, err, core.ErrDateOutOfRange)
}

func TestDate_ZeroValueIsEpoch(t *testing.T) {
	var d core.Date
	require.Equal(t, int64(0), d.EpochDay())
	require.Equal(t, "1970-01-01", d.String())
}

func TestFromYMD_KnownDays(t *testing.T) {
	cases := []struct {
		year  int64
		month time.Month
		day   int
		epoch int64
	}{
		{1970, time.January, 1, 0},
		{1969, time.December, 31, -1},
		{2000, time.March, 1, 11017},
		{2024, time.February, 29, 19782},
		// Rata Die day 1 is 0001-01-01, 719162 days before the epoch.
		{1, time.January, 1, -719162},
	}
	for _, tc := range cases {
		d, err := core.FromYMD(tc.year, tc.month, tc.day)
		require.NoError(t, err)
		require.Equal(t, tc.epoch, d.EpochDay(), "%d-%02d-%02d", tc.year, tc.month, tc.day)

		y, m, dd := d.YMD()
		require.Equal(t, tc.year, y)
		require.Equal(t, tc.month, m)
		require.Equal(t, tc.day, dd)
	}
}

func TestFromYMD_RejectsNonDays(t *testing.T) {
	_, err := core.FromYMD(2024, time.Month(13), 1)
	require.ErrorIs(t, err, core.ErrInvalidCivilDate)

	_, err = core.FromYMD(2024, time.June, 31)
	require.ErrorIs(t, err, core.ErrInvalidCivilDate)

	// 1900 is a century non-leap year.
	_, err = core.FromYMD(1900, time.February, 29)
	require.ErrorIs(t, err, core.ErrInvalidCivilDate)

	_, err = core.FromYMD(2000, time.February, 29)
	require.NoError(t, err, "2000 is a leap year")
}

func TestDate_CivilRoundTrip(t *testing.T) {
	// Walk a stretch crossing a leap February and a year boundary.
	for epoch := int64(-400); epoch <= 400; epoch++ {
		d := core.MustDate(epoch)
		y, m, dd := d.YMD()
		back, err := core.FromYMD(y, m, dd)
		require.NoError(t, err)
		require.Equal(t, epoch, back.EpochDay())
	}
}

func TestDate_AddDays(t *testing.T) {
	d := core.MustDate(10)
	got, err := d.AddDays(-15)
	require.NoError(t, err)
	require.Equal(t, int64(-5), got.EpochDay())

	_, err = d.AddDays(core.MaxEpochDay)
	require.ErrorIs(t, err, core.ErrDateOutOfRange)
}

func TestDate_CompareAndEqual(t *testing.T) {
	a, b := core.MustDate(-1), core.MustDate(1)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, +1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
	require.True(t, a.Equal(core.MustDate(-1)))
	require.False(t, a.Equal(b))
}

func TestDate_Capabilities(t *testing.T) {
	d := core.MustDate(7)
	require.Equal(t, "epochal.Date", d.CalendricalKind())

	got, ok := d.EpochDate()
	require.True(t, ok)
	require.True(t, got.Equal(d))

	nd := core.MustDate(8)
	rebuilt, err := d.WithEpochDate(nd)
	require.NoError(t, err)
	asDate, ok := rebuilt.(core.Date)
	require.True(t, ok)
	require.True(t, asDate.Equal(nd))
}

func TestDaysInMonth(t *testing.T) {
	require.Equal(t, 29, core.DaysInMonth(2024, time.February))
	require.Equal(t, 28, core.DaysInMonth(2023, time.February))
	require.Equal(t, 28, core.DaysInMonth(1900, time.February))
	require.Equal(t, 29, core.DaysInMonth(2000, time.February))
	require.Equal(t, 30, core.DaysInMonth(2024, time.November))
	require.Equal(t, 31, core.DaysInMonth(2024, time.December))
}
