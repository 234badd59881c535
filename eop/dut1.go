// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eop

import (
	"math"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/logger"
)

// A DUT1Entry is the value of UT1-UTC in seconds at the start of the UTC day
// MJD.
type DUT1Entry struct {
	MJD  int
	DUT1 float64
}

// DUT1Table is an immutable table of daily values of UT1-UTC. It is safe for
// concurrent use.
type DUT1Table struct {
	values      map[int]float64
	first, last int
	log         logger.Logger
}

// NewDUT1Table returns a table of the given entries, which must be in
// increasing order of MJD and have |DUT1| < 1s. Days may be missing. Warnings
// are written to log, which may be nil.
func NewDUT1Table(entries []DUT1Entry, log logger.Logger) (*DUT1Table, error) {
	if len(entries) == 0 {
		return nil, errs.Domainf("empty DUT1 table")
	}
	t := &DUT1Table{
		values: make(map[int]float64, len(entries)),
		first:  entries[0].MJD,
		last:   entries[len(entries)-1].MJD,
		log:    logger.OrNoOp(log),
	}
	for i, e := range entries {
		if i > 0 && e.MJD <= entries[i-1].MJD {
			return nil, errs.Domainf("DUT1 table not increasing at MJD %d", e.MJD)
		}
		if !(math.Abs(e.DUT1) < 1) {
			return nil, errs.OutOfRangef("DUT1 %v at MJD %d not in (-1, 1)", e.DUT1, e.MJD)
		}
		t.values[e.MJD] = e.DUT1
	}
	return t, nil
}

// DUT1 returns UT1-UTC in seconds at the given modified Julian day (UTC),
// interpolating linearly between the values of the surrounding days. If UT1-UTC
// jumps up by more than 0.5s, a leap second ends the day and the jump is
// removed before interpolating. If either value is missing, DUT1 logs a
// warning and returns 0.
func (t *DUT1Table) DUT1(mjd float64) float64 {
	day := math.Floor(mjd)
	prev, ok1 := t.values[dayOf(day)]
	next, ok2 := t.values[dayOf(day)+1]
	if !ok1 || !ok2 || math.IsNaN(mjd) {
		t.log.Warn("DUT1 value not in table, using 0", "mjd", mjd, "first", t.first, "last", t.last)
		return 0
	}
	if next-prev > 0.5 {
		next -= 1
	}
	return prev + (next-prev)*(mjd-day)
}

// Range returns the first and last MJD of the table.
func (t *DUT1Table) Range() (first, last int) {
	return t.first, t.last
}
