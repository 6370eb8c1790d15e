// Package zone_test verifies the identifier value semantics, the canonical
// wire form and the lazily bound, memoized provider lookup.
package zone_test

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/epochal/zone"
	"github.com/stretchr/testify/require"
)

// countingProvider records how many raw lookups reach it.
type countingProvider struct {
	known   map[string]bool
	lookups atomic.Int64
}

func newCountingProvider(ids ...string) *countingProvider {
	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}

	return &countingProvider{known: known}
}

type staticRules struct{ id string }

func (r staticRules) Zone() string { return r.id }

func (p *countingProvider) Rules(id string) (zone.RuleSet, error) {
	p.lookups.Add(1)
	if !p.known[id] {
		return nil, zone.ErrUnknownZoneID
	}

	return staticRules{id: id}, nil
}

func (p *countingProvider) IsValid(id string) bool { return p.known[id] }

func TestOfUnchecked_Syntax(t *testing.T) {
	z, err := zone.OfUnchecked("Europe/Prague")
	require.NoError(t, err)
	require.Equal(t, "Europe/Prague", z.String())

	for _, bad := range []string{"", "Europe Prague", "Europe\tPrague", "Europe\x00Prague", "\xff\xfe"} {
		_, err = zone.OfUnchecked(bad)
		require.ErrorIs(t, err, zone.ErrInvalidZoneID, "%q", bad)
	}
}

func TestID_WireForm(t *testing.T) {
	z, err := zone.OfUnchecked("Europe/Prague")
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := z.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(2+13), n)

	// Bit-exact: big-endian length prefix, then UTF-8 text.
	require.Equal(t, append([]byte{0x00, 0x0d}, []byte("Europe/Prague")...), buf.Bytes())
}

func TestID_SerializationRoundTrip(t *testing.T) {
	p := newCountingProvider("Europe/Prague")
	require.NoError(t, zone.RegisterProvider(p))

	z, err := zone.OfUnchecked("Europe/Prague")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = z.WriteTo(&buf)
	require.NoError(t, err)

	before := p.lookups.Load()
	back, err := zone.ReadID(&buf)
	require.NoError(t, err)
	require.Equal(t, z.String(), back.String())
	require.Equal(t, before, p.lookups.Load(), "deserialization must not touch the provider")

	// Binding happens on first use, after the fact.
	rs, err := back.Rules()
	require.NoError(t, err)
	require.Equal(t, "Europe/Prague", rs.Zone())
	require.Greater(t, p.lookups.Load(), before)
}

func TestReadID_Truncated(t *testing.T) {
	_, err := zone.ReadID(strings.NewReader(""))
	require.ErrorIs(t, err, zone.ErrZoneSerialization)

	// Prefix promises 13 bytes, body delivers 6.
	_, err = zone.ReadID(bytes.NewReader([]byte{0x00, 0x0d, 'E', 'u', 'r', 'o', 'p', 'e'}))
	require.ErrorIs(t, err, zone.ErrZoneSerialization)
}

func TestWriteTo_TooLong(t *testing.T) {
	z, err := zone.OfUnchecked(strings.Repeat("a", 65536))
	require.NoError(t, err)

	_, err = z.WriteTo(&bytes.Buffer{})
	require.ErrorIs(t, err, zone.ErrZoneIDTooLong)
}

func TestRules_MemoizedPerIdentifier(t *testing.T) {
	p := newCountingProvider("Asia/Tokyo")
	require.NoError(t, zone.RegisterProvider(p))

	z, err := zone.OfUnchecked("Asia/Tokyo")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		rs, rerr := z.Rules()
		require.NoError(t, rerr)
		require.Equal(t, "Asia/Tokyo", rs.Zone())
	}
	require.Equal(t, int64(1), p.lookups.Load(), "repeat lookups must hit the cache")
}

func TestRules_ConcurrentLookups(t *testing.T) {
	p := newCountingProvider("America/Halifax")
	require.NoError(t, zone.RegisterProvider(p))

	z, err := zone.OfUnchecked("America/Halifax")
	require.NoError(t, err)

	const workers = 16
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs, rerr := z.Rules()
			if rerr == nil && rs.Zone() != "America/Halifax" {
				rerr = zone.ErrUnknownZoneID
			}
			errs <- rerr
		}()
	}
	wg.Wait()
	close(errs)
	for rerr := range errs {
		require.NoError(t, rerr)
	}

	require.Equal(t, int64(1), p.lookups.Load(), "concurrent first lookups must collapse")
}

func TestProviderRegisteredAfterIDCreation(t *testing.T) {
	z, err := zone.OfUnchecked("Australia/Eucla")
	require.NoError(t, err)

	require.NoError(t, zone.RegisterProvider(newCountingProvider("Australia/Eucla")))
	require.True(t, z.IsValid())

	rs, err := z.Rules()
	require.NoError(t, err)
	require.Equal(t, "Australia/Eucla", rs.Zone())
}

func TestOf_ValidatesAgainstProvider(t *testing.T) {
	require.NoError(t, zone.RegisterProvider(newCountingProvider("Europe/Prague")))

	z, err := zone.Of("Europe/Prague")
	require.NoError(t, err)
	require.True(t, z.IsValid())

	_, err = zone.Of("Atlantis/Central")
	require.ErrorIs(t, err, zone.ErrUnknownZoneID)
}

func TestRegisterProvider_Nil(t *testing.T) {
	require.ErrorIs(t, zone.RegisterProvider(nil), zone.ErrNilProvider)
}

func TestFileProvider(t *testing.T) {
	const doc = `
zones:
  Europe/Prague:
    standard-offset: "+01:00"
    abbreviation: CET
  Asia/Tokyo:
    standard-offset: "+09:00"
    abbreviation: JST
`
	p, err := zone.ParseRules([]byte(doc))
	require.NoError(t, err)
	require.True(t, p.IsValid("Europe/Prague"))
	require.False(t, p.IsValid("Europe/Atlantis"))
	require.ElementsMatch(t, []string{"Europe/Prague", "Asia/Tokyo"}, p.ZoneIDs())

	rs, err := p.Rules("Asia/Tokyo")
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", rs.Zone())

	_, err = p.Rules("Europe/Atlantis")
	require.ErrorIs(t, err, zone.ErrUnknownZoneID)
}

func TestParseRules_Malformed(t *testing.T) {
	_, err := zone.ParseRules([]byte("zones: ["))
	require.ErrorIs(t, err, zone.ErrRulesUnavailable)

	_, err = zone.ParseRules([]byte("zones: {}"))
	require.ErrorIs(t, err, zone.ErrRulesUnavailable)

	_, err = zone.ParseRules([]byte("zones:\n  \"bad id\": {abbreviation: X}\n"))
	require.ErrorIs(t, err, zone.ErrInvalidZoneID)
}
