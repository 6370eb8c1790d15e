package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epochal/builder"
	"github.com/katalvlaran/epochal/field"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "--field", "JulianDay", "--value", "2440588")
	require.NoError(t, err)
	require.Contains(t, out, "civil date: 1970-01-01 (epoch day 0)")
	require.Contains(t, out, "ModifiedJulianDay")
	require.Contains(t, out, "40587")
	require.Contains(t, out, "719163")
}

func TestConvertCommand_UnknownField(t *testing.T) {
	_, err := run(t, "convert", "--field", "Nope", "--value", "1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown field")
}

func TestResolveCommand_Agreeing(t *testing.T) {
	out, err := run(t, "resolve",
		"--set", "JulianDay=2440588",
		"--set", "RataDie=719163")
	require.NoError(t, err)
	require.Contains(t, out, "epoch day 0")
}

func TestResolveCommand_Conflicting(t *testing.T) {
	_, err := run(t, "resolve",
		"--set", "JulianDay=2440588",
		"--set", "RataDie=719164")
	require.ErrorIs(t, err, builder.ErrConflictingFieldValues)
}

func TestZoneCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"zones:\n  Europe/Prague:\n    standard-offset: \"+01:00\"\n    abbreviation: CET\n"), 0o600))

	out, err := run(t, "zone", "--rules", path, "Europe/Prague")
	require.NoError(t, err)
	require.Contains(t, out, "Europe/Prague")
	require.Contains(t, out, "+01:00")

	_, err = run(t, "zone", "--rules", path, "Europe/Atlantis")
	require.Error(t, err)
}

func TestParseAssignment(t *testing.T) {
	f, v, err := parseAssignment("ModifiedJulianDay=40587")
	require.NoError(t, err)
	require.Equal(t, field.ModifiedJulianDay, f)
	require.Equal(t, int64(40587), v)

	_, _, err = parseAssignment("oops")
	require.Error(t, err)
	_, _, err = parseAssignment("JulianDay=ten")
	require.Error(t, err)
}
