// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jdcal converts between calendar dates, Julian days and time scales.
//
// Usage:
//
//	jdcal [flags] jd DATE          Julian day and modified Julian day of DATE
//	jdcal [flags] date JD          date of the Julian day number JD
//	jdcal [flags] iso DATE         ISO 8601 calendar and week date of DATE
//	jdcal [flags] fmt FORMAT DATE  DATE formatted with strftime conversions
//	jdcal [flags] layout LAYOUT DATE
//	                               DATE formatted with a Go reference layout
//	jdcal [flags] tai DATE [TIME]  TAI-UTC and the Julian day in all time scales
//
// DATE is an ISO 8601 calendar or week date, like 2025-01-11 or 2025-W02-6.
// TIME is a UTC time of day, like 12:30:00.5.
//
// The calendar reform is set with -reform or JDCAL_REFORM, the log level with
// -log-level or JDCAL_LOG_LEVEL.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonih.org/calendar"
	"gonih.org/calendar/eop"
	"gonih.org/calendar/internal/config"
	"gonih.org/calendar/logger"
	"gonih.org/calendar/timescale"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

var errUsage = errors.New("usage: jdcal [flags] jd|date|iso|fmt|layout|tai ARGS...")

func run(ctx context.Context, args []string, lookup func(string) (string, bool), stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv(lookup)
	if err != nil {
		fmt.Fprintln(stderr, "jdcal:", err)
		return 2
	}
	fs := flag.NewFlagSet("jdcal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	dut1 := fs.Float64("dut1", 0, "UT1-UTC in seconds, for the tai command")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := cfg.Logger(ctx, stderr)
	log.Debug("Configured", "reform", cfg.Engine, "level", cfg.LogLevel)

	c := &cmd{cfg: cfg, log: log, dut1: *dut1, out: stdout}
	defer func() {
		n, hits, misses := calendar.LayoutCacheStats()
		log.Debug("Layout cache", "layouts", n, "hits", hits, "misses", misses)
	}()
	if err := c.run(fs.Args()); err != nil {
		log.Error("Command failed", "args", fs.Args(), "error", err)
		fmt.Fprintln(stderr, "jdcal:", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

type cmd struct {
	cfg  *config.Config
	log  logger.Logger
	dut1 float64
	out  io.Writer
}

func (c *cmd) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch name, args := args[0], args[1:]; {
	case name == "jd" && len(args) == 1:
		return c.jd(args[0])
	case name == "date" && len(args) == 1:
		return c.date(args[0])
	case name == "iso" && len(args) == 1:
		return c.iso(args[0])
	case name == "fmt" && len(args) == 2:
		return c.format(args[0], args[1])
	case name == "layout" && len(args) == 2:
		return c.layout(args[0], args[1])
	case name == "tai" && (len(args) == 1 || len(args) == 2):
		clock := "00:00:00"
		if len(args) == 2 {
			clock = args[1]
		}
		return c.tai(args[0], clock)
	}
	return errUsage
}

func (c *cmd) parse(s string) (calendar.Date, error) {
	d, err := c.cfg.Engine.ParseISO(s)
	if err != nil {
		return calendar.Date{}, err
	}
	c.log.Trace("Parsed date", "input", s, "date", d)
	return d, nil
}

func (c *cmd) jd(s string) error {
	d, err := c.parse(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v JD %d MJD %d %v\n", d, d.JD(), d.MJD(), d.Weekday())
	return nil
}

func (c *cmd) date(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %v", calendar.ErrParse, err)
	}
	d, err := c.cfg.Engine.FromJD(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v %v day %d\n", d, d.Weekday(), d.YearDay())
	return nil
}

func (c *cmd) iso(s string) error {
	d, err := c.parse(s)
	if err != nil {
		return err
	}
	w, err := d.ISOWeekFormat()
	if err != nil {
		c.log.Info("No ISO week date", "date", d, "error", err)
		w = "-"
	}
	fmt.Fprintf(c.out, "%s %s\n", d.ISOFormat(), w)
	return nil
}

func (c *cmd) format(layout, s string) error {
	d, err := c.parse(s)
	if err != nil {
		return err
	}
	out, err := d.Strftime(layout)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, out)
	return nil
}

func (c *cmd) layout(layout, s string) error {
	d, err := c.parse(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, d.Format(layout))
	return nil
}

func (c *cmd) tai(s, clock string) error {
	d, err := c.parse(s)
	if err != nil {
		return err
	}
	var (
		h, m int
		sec  float64
	)
	if n, _ := fmt.Sscanf(clock, "%d:%d:%g", &h, &m, &sec); n != 3 || h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec >= 61 {
		return fmt.Errorf("%w: invalid time of day %q", calendar.ErrParse, clock)
	}
	leaps := eop.IERS(c.log)
	conv := timescale.New(leaps, timescale.DUT1Func(func(float64) float64 { return c.dut1 }))
	utc := timescale.FromDate(d, h, m, sec)
	fmt.Fprintf(c.out, "TAI-UTC %gs\n", leaps.TAIMinusUTC(utc.MJD()))
	for _, s := range []timescale.Scale{timescale.UTC, timescale.UT1, timescale.TAI, timescale.TT, timescale.TCG, timescale.GPS} {
		jd, err := conv.Convert(utc, timescale.UTC, s)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%-3v %.9f\n", s, jd.Float())
	}
	era, err := conv.ERA(utc, timescale.UTC)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "ERA %.9f rad\n", era)
	return nil
}
