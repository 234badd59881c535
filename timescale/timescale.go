// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timescale converts Julian days between the time scales UTC, UT1,
// TAI, TT, TCG and GPS, and computes the Earth rotation angle.
//
// Julian days are represented in two parts, usually a day and a fraction of
// a day, to retain sub-microsecond precision. The offsets TAI-UTC and UT1-UTC
// are not computed by this package; they are injected into a Converter,
// typically from the tables of package eop.
package timescale

import (
	"fmt"
	"math"
	"strings"

	"gonih.org/calendar"
	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/julianday"
)

// Errors returned by this package. They are the same values as the
// corresponding errors of package calendar.
var (
	ErrDomain = errs.Domain
	ErrParse  = errs.Parse
)

// Fixed offsets between time scales, in seconds.
const (
	TTMinusTAI  = 32.184
	TAIMinusGPS = 19

	secondsPerDay = 86400
)

// TCG runs faster than TT by the defining rate LG (IAU 2000 Resolution B1.9).
// Both scales agree at the Julian day TCGEpoch (TT), which is
// 1977-01-01T00:00:32.184 TT.
const (
	LG       = 6.969290134e-10
	TCGEpoch = 2443144.5003725
)

// A Scale is a time scale.
type Scale int

// Supported time scales.
const (
	UTC Scale = iota
	UT1
	TAI
	TT
	GPS
	TCG
)

var scaleNames = [...]string{
	UTC: "UTC",
	UT1: "UT1",
	TAI: "TAI",
	TT:  "TT",
	GPS: "GPS",
	TCG: "TCG",
}

func (s Scale) String() string {
	if s >= 0 && int(s) < len(scaleNames) {
		return scaleNames[s]
	}
	return fmt.Sprintf("Scale(%d)", int(s))
}

// ParseScale returns the Scale of the given name, ignoring case.
func ParseScale(name string) (Scale, error) {
	for s, n := range scaleNames {
		if strings.EqualFold(name, n) {
			return Scale(s), nil
		}
	}
	return 0, errs.Parsef("unknown time scale %q", name)
}

// JD is a two-part Julian day. Its value is Day+Frac; the split is arbitrary,
// but Day usually holds the Julian day of midnight and Frac the fraction of
// the day.
type JD struct {
	Day  float64
	Frac float64
}

// FromDate returns the Julian day of the given time of day at date d.
func FromDate(d calendar.Date, hour, minute int, second float64) JD {
	return JD{Day: d.JulianDay(), Frac: julianday.DayFraction(hour, minute, second)}
}

// Float returns j as a single number.
func (j JD) Float() float64 {
	return j.Day + j.Frac
}

// MJD returns the modified Julian day of j.
func (j JD) MJD() float64 {
	return (j.Day - julianday.MJD0) + j.Frac
}

// Date returns the date of j under the engine e, together with the fraction
// of the day elapsed since midnight.
func (j JD) Date(e *calendar.Engine) (d calendar.Date, frac float64, err error) {
	day := math.Floor(j.Day + 0.5)
	frac = (j.Day + 0.5 - day) + j.Frac
	n := math.Floor(frac)
	day, frac = day+n, frac-n
	if !(day >= 0 && day <= math.MaxInt32) {
		return calendar.Date{}, 0, errs.OutOfRangef("Julian day %v", j.Float())
	}
	d, err = e.FromJD(int(day))
	return d, frac, err
}

func (j JD) addSeconds(s float64) JD {
	return JD{Day: j.Day, Frac: j.Frac + s/secondsPerDay}
}

func (j JD) String() string {
	return fmt.Sprintf("JD %.9f", j.Float())
}
