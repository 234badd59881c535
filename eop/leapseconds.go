// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eop

import (
	"fmt"
	"math"
	"time"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/julianday"
	"gonih.org/calendar/logger"
)

// A LeapSecond is an entry of a leap second table. From the start of the
// given UTC day, TAI-UTC is Offset + (MJD - MJD0) * Rate seconds, where MJD
// is the modified Julian day (UTC). Rate is 0 for all entries since 1972.
type LeapSecond struct {
	Year   int
	Month  time.Month
	Day    int
	Offset float64
	MJD0   float64
	Rate   float64
}

// String returns the date of l and its offset, like "2017-01-01 TAI-UTC=37s".
func (l LeapSecond) String() string {
	if l.Rate == 0 {
		return fmt.Sprintf("%04d-%02d-%02d TAI-UTC=%gs", l.Year, l.Month, l.Day, l.Offset)
	}
	return fmt.Sprintf("%04d-%02d-%02d TAI-UTC=%gs+(MJD-%g)*%gs", l.Year, l.Month, l.Day, l.Offset, l.MJD0, l.Rate)
}

// LeapSeconds is an immutable table of leap seconds. It is safe for
// concurrent use.
type LeapSeconds struct {
	entries []LeapSecond
	mjds    []int
	log     logger.Logger
}

// NewLeapSeconds returns a table of the given entries, which must be valid
// dates in increasing order. Warnings are written to log, which may be nil.
func NewLeapSeconds(entries []LeapSecond, log logger.Logger) (*LeapSeconds, error) {
	if len(entries) == 0 {
		return nil, errs.Domainf("empty leap second table")
	}
	t := &LeapSeconds{
		entries: make([]LeapSecond, len(entries)),
		mjds:    make([]int, len(entries)),
		log:     logger.OrNoOp(log),
	}
	copy(t.entries, entries)
	for i, e := range t.entries {
		mjd, err := julianday.MJD(e.Year, e.Month, float64(e.Day))
		if err != nil {
			return nil, fmt.Errorf("leap second %d: %w", i, err)
		}
		t.mjds[i] = int(mjd)
		if i > 0 && t.mjds[i] <= t.mjds[i-1] {
			return nil, errs.Domainf("leap second table not increasing at %04d-%02d-%02d", e.Year, e.Month, e.Day)
		}
	}
	return t, nil
}

// IERS returns the leap second table published by the IERS, ending with the
// leap second of 2016-12-31. Warnings are written to log, which may be nil.
func IERS(log logger.Logger) *LeapSeconds {
	t, err := NewLeapSeconds(iers, log)
	if err != nil {
		panic(err)
	}
	return t
}

// TAIMinusUTC returns TAI-UTC in seconds at the given modified Julian day
// (UTC). Before the first entry of the table, it logs a warning and returns 0.
func (t *LeapSeconds) TAIMinusUTC(mjd float64) float64 {
	if math.IsNaN(mjd) {
		t.log.Warn("Invalid MJD for leap second lookup, using 0", "mjd", mjd)
		return 0
	}
	i, ok := Bisect(t.mjds, dayOf(mjd))
	if !ok {
		t.log.Warn("Date precedes leap second table, using 0", "mjd", mjd, "first", t.entries[0].String())
		return 0
	}
	e := t.entries[i]
	return e.Offset + (mjd-e.MJD0)*e.Rate
}

// At returns TAI-UTC in seconds at the start of the given UTC day.
func (t *LeapSeconds) At(year int, month time.Month, day int) (float64, error) {
	mjd, err := julianday.MJD(year, month, float64(day))
	if err != nil {
		return 0, err
	}
	return t.TAIMinusUTC(mjd), nil
}

// IsLeapDay reports whether TAI-UTC changes at the start of the given UTC
// day, that is whether the previous day ended with a leap second.
func (t *LeapSeconds) IsLeapDay(year int, month time.Month, day int) bool {
	mjd, err := julianday.MJD(year, month, float64(day))
	if err != nil {
		return false
	}
	i, ok := Bisect(t.mjds, int(mjd))
	return ok && t.mjds[i] == int(mjd)
}

// Last returns the most recent entry of the table.
func (t *LeapSeconds) Last() LeapSecond {
	return t.entries[len(t.entries)-1]
}

// Entries returns a copy of the entries of the table.
func (t *LeapSeconds) Entries() []LeapSecond {
	return append([]LeapSecond(nil), t.entries...)
}

// dayOf returns the integer day of mjd, clamped to the range of int32.
func dayOf(mjd float64) int {
	return int(math.Min(math.Max(math.Floor(mjd), math.MinInt32), math.MaxInt32))
}

var iers = []LeapSecond{
	{1961, time.January, 1, 1.4228180, 37300, 0.001296},
	{1961, time.August, 1, 1.3728180, 37300, 0.001296},
	{1962, time.January, 1, 1.8458580, 37665, 0.0011232},
	{1963, time.November, 1, 1.9458580, 37665, 0.0011232},
	{1964, time.January, 1, 3.2401300, 38761, 0.001296},
	{1964, time.April, 1, 3.3401300, 38761, 0.001296},
	{1964, time.September, 1, 3.4401300, 38761, 0.001296},
	{1965, time.January, 1, 3.5401300, 38761, 0.001296},
	{1965, time.March, 1, 3.6401300, 38761, 0.001296},
	{1965, time.July, 1, 3.7401300, 38761, 0.001296},
	{1965, time.September, 1, 3.8401300, 38761, 0.001296},
	{1966, time.January, 1, 4.3131700, 39126, 0.002592},
	{1968, time.February, 1, 4.2131700, 39126, 0.002592},
	{1972, time.January, 1, 10, 41317, 0},
	{1972, time.July, 1, 11, 41317, 0},
	{1973, time.January, 1, 12, 41317, 0},
	{1974, time.January, 1, 13, 41317, 0},
	{1975, time.January, 1, 14, 41317, 0},
	{1976, time.January, 1, 15, 41317, 0},
	{1977, time.January, 1, 16, 41317, 0},
	{1978, time.January, 1, 17, 41317, 0},
	{1979, time.January, 1, 18, 41317, 0},
	{1980, time.January, 1, 19, 41317, 0},
	{1981, time.July, 1, 20, 41317, 0},
	{1982, time.July, 1, 21, 41317, 0},
	{1983, time.July, 1, 22, 41317, 0},
	{1985, time.July, 1, 23, 41317, 0},
	{1988, time.January, 1, 24, 41317, 0},
	{1990, time.January, 1, 25, 41317, 0},
	{1991, time.January, 1, 26, 41317, 0},
	{1992, time.July, 1, 27, 41317, 0},
	{1993, time.July, 1, 28, 41317, 0},
	{1994, time.July, 1, 29, 41317, 0},
	{1996, time.January, 1, 30, 41317, 0},
	{1997, time.July, 1, 31, 41317, 0},
	{1999, time.January, 1, 32, 41317, 0},
	{2006, time.January, 1, 33, 41317, 0},
	{2009, time.January, 1, 34, 41317, 0},
	{2012, time.July, 1, 35, 41317, 0},
	{2015, time.July, 1, 36, 41317, 0},
	{2017, time.January, 1, 37, 41317, 0},
}
