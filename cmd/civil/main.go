// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command civil formats, parses and computes with civil dates and times.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"gonih.org/civil"
	"gonih.org/civil/clock"
)

var version = "0.1.0"

// app is the state shared by all commands.
type app struct {
	cfg   Config
	log   *logging.Logger
	out   io.Writer
	clock clock.Source
	zones civil.ZoneProvider
}

func main() {
	ctx := context.Background()
	logger := &logging.Logger{Out: os.Stderr, Level: logging.LevelWarn}

	cfg, err := readConfig()
	if err != nil {
		logger.Fatal(ctx, "error in configuration", logging.ErrField(err))
		os.Exit(1)
	}
	if logger.Level, err = cfg.level(); err != nil {
		logger.Fatal(ctx, "error in configuration", logging.ErrField(err))
		os.Exit(1)
	}

	a := &app{cfg: cfg, log: logger, out: os.Stdout, clock: clock.System{}}
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "civil",
		Short: "Civil calendar dates and times",
		Long: `Civil formats, parses and computes with calendar dates, times of day
and UTC offsets.

Values are given as ISO 8601 strings like 2024-06-21, 13:42:11 or
2024-06-21T13:42:11-04:00. Values without an offset are read in the
configured zone.

Configuration is read from the environment:
  CIVIL_ZONE        zone for values without offset (default: local)
  CIVIL_LAYOUT      default output layout
  CIVIL_ZONES_FILE  YAML zone table to use instead of the host database
  CIVIL_LOG_LEVEL   debug, info, warn or error`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s := civil.LayoutCacheStats()
			a.log.Debug(cmd.Context(), "layout cache", logging.Fields{
				"hits":   s.Hits,
				"misses": s.Misses,
				"size":   s.Size,
			})
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.PersistentFlags().String("zone", "", "Zone name, overriding CIVIL_ZONE")

	rootCmd.AddCommand(a.formatCmd())
	rootCmd.AddCommand(a.parseCmd())
	rootCmd.AddCommand(a.addCmd())
	rootCmd.AddCommand(a.betweenCmd())
	rootCmd.AddCommand(a.humanizeCmd())
	rootCmd.AddCommand(a.nowCmd())
	rootCmd.AddCommand(a.strftimeCmd())
	return rootCmd
}

// setup resolves the zone provider once per invocation.
func (a *app) setup(ctx context.Context) error {
	if a.zones != nil {
		return nil
	}
	zones, err := a.cfg.zones()
	if err != nil {
		a.log.Error(ctx, "loading zones", logging.ErrField(err), logging.Field("file", a.cfg.ZonesFile))
		return err
	}
	a.log.Debug(ctx, "zones ready", logging.Field("file", a.cfg.ZonesFile), logging.Field("local", zones.Local()))
	a.zones = zones
	return nil
}
