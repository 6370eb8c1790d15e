// Package main is the datecalc CLI: convert values between day-count fields,
// resolve heterogeneous field values to one canonical date and inspect zone
// identifiers against a YAML rules file.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/epochal/builder"
	"github.com/katalvlaran/epochal/core"
	"github.com/katalvlaran/epochal/field"
	"github.com/katalvlaran/epochal/zone"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("datecalc failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "datecalc",
		Short:         "Convert and reconcile day-count calendar fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newConvertCmd(), newResolveCmd(), newZoneCmd(), newFieldsCmd())

	return root
}

// newConvertCmd converts one field value to every registered representation.
func newConvertCmd() *cobra.Command {
	var (
		fieldName string
		value     int64
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single field value to all known representations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, ok := field.Lookup(fieldName)
			if !ok {
				return errors.Errorf("unknown field %q (try 'datecalc fields')", fieldName)
			}
			of, ok := f.(*field.OffsetField)
			if !ok {
				return errors.Errorf("field %q does not define a direct date conversion", fieldName)
			}

			d, err := of.CreateDate(value)
			if err != nil {
				return errors.Wrapf(err, "convert %s=%d", fieldName, value)
			}
			log.Debug().Str("field", fieldName).Int64("value", value).
				Int64("epoch_day", d.EpochDay()).Msg("converted")

			printDate(cmd, d)

			return nil
		},
	}
	cmd.Flags().StringVar(&fieldName, "field", "JulianDay", "source field name")
	cmd.Flags().Int64Var(&value, "value", 0, "source field value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

// newResolveCmd feeds field assignments to a builder and reports the date
// they agree on, or the contradiction between them.
func newResolveCmd() *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a set of Field=value assignments to one date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(assignments) == 0 {
				return errors.New("at least one --set Field=value is required")
			}

			b := builder.New()
			for _, raw := range assignments {
				f, v, err := parseAssignment(raw)
				if err != nil {
					return err
				}
				if err = b.Set(f, v); err != nil {
					return errors.Wrapf(err, "set %s", raw)
				}
			}

			d, err := b.Resolve()
			if err != nil {
				return errors.Wrap(err, "resolution")
			}
			for _, left := range b.Unresolved() {
				log.Warn().Str("field", left.Name()).Msg("entry not consumed by any resolver")
			}

			printDate(cmd, d)

			return nil
		},
	}
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "field assignment, e.g. --set JulianDay=2440588 (repeatable)")

	return cmd
}

// newZoneCmd validates an identifier against a YAML rules file.
func newZoneCmd() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "zone <identifier>",
		Short: "Inspect a zone identifier against a rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := zone.NewFileProvider(rulesPath)
			if err != nil {
				return errors.Wrapf(err, "load rules from %s", rulesPath)
			}
			if err = zone.RegisterProvider(provider); err != nil {
				return err
			}
			log.Debug().Int("zones", len(provider.ZoneIDs())).Str("path", rulesPath).Msg("rules loaded")

			id, err := zone.Of(args[0])
			if err != nil {
				return errors.Wrapf(err, "zone %s", args[0])
			}
			rules, err := id.Rules()
			if err != nil {
				return err
			}

			cmd.Printf("%s: %v\n", id, rules)

			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "zones.yaml", "path to the YAML rules document")

	return cmd
}

// newFieldsCmd lists the registered fields and their declared ranges.
func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List registered fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, f := range field.Registered() {
				cmd.Printf("%-20s base=%s range-unit=%s legal=%s\n",
					f.Name(), f.BaseUnit(), f.RangeUnit(), f.ValueRange())
			}

			return nil
		},
	}
}

// parseAssignment splits "Field=value" into a registered field and an int64.
func parseAssignment(raw string) (field.Field, int64, error) {
	name, val, ok := strings.Cut(raw, "=")
	if !ok {
		return nil, 0, errors.Errorf("malformed assignment %q, want Field=value", raw)
	}
	f, found := field.Lookup(name)
	if !found {
		return nil, 0, errors.Errorf("unknown field %q (try 'datecalc fields')", name)
	}
	v, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "value of %s", name)
	}

	return f, v, nil
}

// printDate renders one canonical date with every registered field value.
func printDate(cmd *cobra.Command, d core.Date) {
	cmd.Printf("civil date: %s (epoch day %d)\n", d, d.EpochDay())
	for _, f := range field.Registered() {
		v, err := f.Get(d)
		if err != nil {
			// Fields that cannot read a plain date are skipped, not fatal.
			log.Debug().Str("field", f.Name()).Err(err).Msg("skipped")

			continue
		}
		cmd.Printf("%-20s %d\n", f.Name(), v)
	}
}
