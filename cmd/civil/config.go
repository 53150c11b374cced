// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"go.llib.dev/frameless/pkg/logging"

	"gonih.org/civil"
	"gonih.org/civil/tz"
)

// Config is read from the environment. Flags override it per command.
type Config struct {
	// Zone is the zone values without an offset are read in, and the zone
	// "now" reports. Empty means the local zone of the provider.
	Zone string `env:"CIVIL_ZONE" env-default:""`
	// Layout is the default directive layout for output.
	Layout string `env:"CIVIL_LAYOUT" env-default:"YYYY-MM-DD[T]HH:mm:ssZ"`
	// ZonesFile is a YAML zone table. If empty, the host zone database is
	// used.
	ZonesFile string `env:"CIVIL_ZONES_FILE" env-default:""`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CIVIL_LOG_LEVEL" env-default:"warn"`
}

func readConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration from environment variables: %w", err)
	}
	return cfg, nil
}

func (cfg Config) level() (logging.Level, error) {
	switch l := logging.Level(cfg.LogLevel); l {
	case logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError:
		return l, nil
	}
	return "", fmt.Errorf("invalid log level %q", cfg.LogLevel)
}

// zones returns the zone provider configured by cfg.
func (cfg Config) zones() (civil.ZoneProvider, error) {
	if cfg.ZonesFile == "" {
		return tz.System{LocalZone: cfg.Zone}, nil
	}
	t, err := tz.LoadTable(cfg.ZonesFile)
	if err != nil {
		return nil, err
	}
	if cfg.Zone != "" {
		t.LocalZone = cfg.Zone
	}
	return t, nil
}
