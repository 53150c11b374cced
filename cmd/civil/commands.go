// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"gonih.org/civil"
	"gonih.org/civil/clock"
)

// zone returns the zone selected by flag or configuration.
func (a *app) zone(cmd *cobra.Command) string {
	if z, _ := cmd.Flags().GetString("zone"); z != "" {
		return z
	}
	if a.cfg.Zone != "" {
		return a.cfg.Zone
	}
	return a.zones.Local()
}

func (a *app) layout(cmd *cobra.Command) string {
	if l, _ := cmd.Flags().GetString("layout"); l != "" {
		return l
	}
	return a.cfg.Layout
}

// readInstant parses a datetime. Values without an offset are read in the
// selected zone and bare dates are taken at midnight.
func (a *app) readInstant(cmd *cobra.Command, s string) (civil.DateTime, error) {
	dt, err := civil.ParseDateTime(s)
	if err == nil || !errors.Is(err, civil.ErrMissingComponent) {
		return dt, err
	}
	n, err := civil.ParseNaive(s)
	if errors.Is(err, civil.ErrMissingComponent) {
		d, derr := civil.ParseDate(s)
		if derr != nil {
			return civil.DateTime{}, derr
		}
		n, err = civil.NewNaiveDateTime(d, civil.Midnight), nil
	}
	if err != nil {
		return civil.DateTime{}, err
	}
	zone := a.zone(cmd)
	// The offset is looked up at the reading taken as UTC, which can be off
	// by the offset itself around transitions.
	o, err := a.zones.Offset(zone, n.WithOffset(civil.UTC))
	if err != nil {
		return civil.DateTime{}, err
	}
	a.log.Debug(cmd.Context(), "read in zone", logging.Field("value", s), logging.Field("zone", zone), logging.Field("offset", o.String()))
	return n.WithOffset(o), nil
}

func (a *app) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <datetime>",
		Short: "Format a datetime with a directive layout",
		Long: `Format a datetime with a directive layout.

Example:
  civil format 2024-06-21T13:42:11.314-04:00 --layout "ddd @ h:mm A (z)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.readInstant(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.Format(a.layout(cmd)))
			return nil
		},
	}
	cmd.Flags().StringP("layout", "l", "", "Output layout, overriding CIVIL_LAYOUT")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <layout> <value>",
		Short: "Parse a value with a directive layout",
		Long: `Parse a value with a directive layout and print it in ISO 8601 form.

The most complete value the layout describes is printed: a datetime with
offset, a naive datetime, a date or a time of day.

Example:
  civil parse "DD.MM.YYYY HH:mm" "21.06.2024 13:42"
  civil parse --parts "ddd, D MMM YY" "Fri, 21 Jun 24"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, value := args[0], args[1]
			if parts, _ := cmd.Flags().GetBool("parts"); parts {
				return a.printParts(cmd, layout, value)
			}
			s, err := parseLayout(layout, value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().Bool("parts", false, "Print the fields read from the value")
	return cmd
}

// parseLayout parses value as the most complete kind of value layout
// describes.
func parseLayout(layout, value string) (fmt.Stringer, error) {
	dt, err := civil.ParseDateTimeLayout(layout, value)
	if !errors.Is(err, civil.ErrMissingComponent) {
		return dt, err
	}
	n, err := civil.ParseNaiveLayout(layout, value)
	if !errors.Is(err, civil.ErrMissingComponent) {
		return n, err
	}
	if d, err := civil.ParseDateLayout(layout, value); !errors.Is(err, civil.ErrMissingComponent) {
		return d, err
	}
	return civil.ParseTimeLayout(layout, value)
}

func (a *app) printParts(cmd *cobra.Command, layout, value string) error {
	parts, err := civil.ParseParts(layout, value)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, p := range parts {
		if p.Kind == civil.PartLiteral {
			continue
		}
		fmt.Fprintf(w, "%s\t%q\t%d\n", p.Kind, p.Text, p.Value)
	}
	return w.Flush()
}

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <datetime> [duration]",
		Short: "Add a duration or calendar days to a datetime",
		Long: `Add a duration or calendar days to a datetime.

The duration uses Go syntax, like 90m or -1h30m. --days adds calendar
days to the date, keeping the time of day.

Example:
  civil add 2024-02-28T12:00:00Z 36h
  civil add 2024-02-28 --days 2`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.readInstant(cmd, args[0])
			if err != nil {
				return err
			}
			if len(args) > 1 {
				d, err := time.ParseDuration(args[1])
				if err != nil {
					return err
				}
				dt = dt.AddDuration(civil.DurationFromStd(d))
			}
			if days, _ := cmd.Flags().GetInt("days"); days != 0 {
				dt = civil.NewDateTime(dt.Date().AddDays(days), dt.Time(), dt.Offset())
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.Format(a.layout(cmd)))
			return nil
		},
	}
	cmd.Flags().Int("days", 0, "Calendar days to add")
	cmd.Flags().StringP("layout", "l", "", "Output layout, overriding CIVIL_LAYOUT")
	return cmd
}

func (a *app) betweenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "between <start> <end>",
		Short: "Show the calendar period between two datetimes",
		Long: `Show the calendar period between two datetimes: whole days, months and
years, and the elapsed time.

Example:
  civil between 2024-06-13T15:47:00Z 2024-06-21T07:16:12Z
  civil between --dates 2024-06-28 2024-07-02`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := a.readInstant(cmd, args[0])
			if err != nil {
				return err
			}
			end, err := a.readInstant(cmd, args[1])
			if err != nil {
				return err
			}
			p := civil.NewDateTimePeriod(start, end)
			out := cmd.OutOrStdout()
			if dates, _ := cmd.Flags().GetBool("dates"); dates {
				for d := range p.ComprisingDates() {
					fmt.Fprintln(out, d)
				}
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "period\t%s\n", p)
			fmt.Fprintf(w, "days\t%d\n", p.Days())
			fmt.Fprintf(w, "full months\t%d\n", p.FullMonths())
			fmt.Fprintf(w, "full years\t%d\n", p.FullYears())
			fmt.Fprintf(w, "elapsed\t%s\n", p.Duration())
			return w.Flush()
		},
	}
	cmd.Flags().Bool("dates", false, "List the dates of the period")
	return cmd
}

// unitByName looks up a Unit by its singular or plural name.
func unitByName(name string) (civil.Unit, error) {
	name = strings.TrimSuffix(strings.ToLower(name), "s")
	for u := civil.Nanosecond; u <= civil.ImpreciseYear; u++ {
		if u.String() == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", name)
}

func (a *app) humanizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humanize <duration>",
		Short: "Render a duration in words",
		Long: `Render a duration in words. The duration uses Go syntax.

Example:
  civil humanize 13h
  civil humanize --unit minute --decimals 1 5400s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sd, err := time.ParseDuration(args[0])
			if err != nil {
				return err
			}
			d := civil.DurationFromStd(sd)
			unit, _ := cmd.Flags().GetString("unit")
			if unit == "" {
				fmt.Fprintln(cmd.OutOrStdout(), d.Format())
				return nil
			}
			u, err := unitByName(unit)
			if err != nil {
				return err
			}
			decimals, _ := cmd.Flags().GetInt("decimals")
			fmt.Fprintln(cmd.OutOrStdout(), d.FormatIn(u, decimals))
			return nil
		},
	}
	cmd.Flags().String("unit", "", "Render in a single unit, like hour or day")
	cmd.Flags().Int("decimals", 0, "Decimals of the single unit")
	return cmd
}

// now returns the current instant in the selected zone.
func (a *app) now(cmd *cobra.Command) (civil.DateTime, error) {
	utc := clock.Now(a.clock, civil.UTC)
	o, err := a.zones.Offset(a.zone(cmd), utc)
	if err != nil {
		return civil.DateTime{}, err
	}
	return utc.ToOffset(o), nil
}

func (a *app) nowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.now(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.Format(a.layout(cmd)))
			return nil
		},
	}
	cmd.Flags().StringP("layout", "l", "", "Output layout, overriding CIVIL_LAYOUT")
	return cmd
}

func (a *app) strftimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strftime <format> [datetime]",
		Short: "Format or parse with a C strftime format",
		Long: `Format a datetime, by default the current time, with a C strftime
format. With --parse, the datetime is parsed with the format instead and
printed in ISO 8601 form.

Example:
  civil strftime "%Y-%m-%d %H:%M" 2024-06-21T13:42:11Z
  civil strftime --parse "%d/%m/%Y" 21/06/2024`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			if parse, _ := cmd.Flags().GetBool("parse"); parse {
				if len(args) < 2 {
					return errors.New("--parse needs a value")
				}
				dt, err := civil.ParseStrftime(format, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dt)
				return nil
			}
			var (
				dt  civil.DateTime
				err error
			)
			if len(args) > 1 {
				dt, err = a.readInstant(cmd, args[1])
			} else {
				dt, err = a.now(cmd)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.Strftime(format))
			return nil
		},
	}
	cmd.Flags().Bool("parse", false, "Parse the value instead of formatting it")
	return cmd
}
