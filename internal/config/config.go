// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of the jdcal command from the
// environment, with command line flags taking precedence.
package config

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gonih.org/calendar"
	"gonih.org/calendar/logger"
)

// Environment variables read by FromEnv.
const (
	EnvReform   = "JDCAL_REFORM"
	EnvLogLevel = "JDCAL_LOG_LEVEL"
)

// Config is the configuration of the jdcal command.
type Config struct {
	// Engine converts dates. It is set from JDCAL_REFORM or -reform, and
	// defaults to calendar.Default.
	Engine *calendar.Engine

	// LogLevel is the minimum level of log records written to stderr. It is
	// set from JDCAL_LOG_LEVEL or -log-level, and defaults to WARN.
	LogLevel logger.Level
}

// Load reads the configuration from the environment of the process.
func Load() (*Config, error) {
	return FromEnv(os.LookupEnv)
}

// FromEnv reads the configuration using lookup, which has the signature of
// os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Engine:   calendar.Default(),
		LogLevel: logger.LevelWarn,
	}
	if v, ok := lookup(EnvReform); ok {
		e, err := calendar.ParseReform(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvReform, err)
		}
		cfg.Engine = e
	}
	if v, ok := lookup(EnvLogLevel); ok {
		l, err := logger.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = l
	}
	return cfg, nil
}

// RegisterFlags defines flags on fs which override the fields of c.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(engineFlag{c}, "reform", "calendar reform: default, julian, gregorian or YYYY-MM-DD")
	fs.Var(levelFlag{c}, "log-level", "minimum log level: trace, debug, info, warn, error or off")
}

// Logger returns a Logger writing text records at c.LogLevel to w.
func (c *Config) Logger(ctx context.Context, w io.Writer) *logger.SlogLogger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       c.LogLevel.Slog(),
		ReplaceAttr: logger.ReplaceLevel,
	})
	return logger.NewSlogLogger(ctx, slog.New(h))
}

type engineFlag struct{ c *Config }

func (f engineFlag) String() string {
	if f.c == nil || f.c.Engine == nil {
		return calendar.Default().String()
	}
	return f.c.Engine.String()
}

func (f engineFlag) Set(s string) error {
	e, err := calendar.ParseReform(s)
	if err != nil {
		return err
	}
	f.c.Engine = e
	return nil
}

type levelFlag struct{ c *Config }

func (f levelFlag) String() string {
	if f.c == nil {
		return logger.LevelWarn.String()
	}
	return f.c.LogLevel.String()
}

func (f levelFlag) Set(s string) error {
	l, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}
	f.c.LogLevel = l
	return nil
}
