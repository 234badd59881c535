// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package julianday converts between civil dates and fractional Julian days,
// using the algorithm from Jean Meeus, "Astronomical Algorithms", chapter 7.
//
// Dates before 1582-10-15 are in the Julian calendar, dates on or after it
// in the Gregorian calendar. The ten days 1582-10-05 to 1582-10-14 do not
// exist. For configurable reform dates and exact integer arithmetic, use the
// Engine type of the parent package.
//
// A Julian day starts at noon, so the civil date 2000-01-01 at midnight is
// JD 2451544.5.
package julianday

import (
	"math"
	"time"

	"gonih.org/calendar/internal/errs"
)

const (
	// MJD0 is the Julian day of the epoch of the modified Julian day,
	// 1858-11-17 at midnight.
	MJD0 = 2400000.5
	// J2000 is the Julian day of the epoch J2000.0, 2000-01-01 at noon.
	J2000 = 2451545.0
	// B1900 is the Julian day of the epoch B1900.0.
	B1900 = 2415020.31352

	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525
	// DaysPerTropicalYear is the length of a tropical year at B1900.0.
	DaysPerTropicalYear = 365.242198781

	// MinYear and MaxYear bound the supported years.
	MinYear = -4712
	MaxYear = 9999

	// gregorianThreshold separates the values of the date heuristic for
	// 1582-10-04 and 1582-10-15.
	gregorianThreshold = 578140
	// gregorianZ is the first integer day (counting from JD -0.5) of the
	// Gregorian calendar.
	gregorianZ = 2299161

	secondsPerDay = 86400
)

// Errors returned by this package. They are the same values as the
// corresponding errors of the parent package.
var (
	ErrOutOfRange  = errs.OutOfRange
	ErrInvalidDate = errs.InvalidDate
)

// GregorianByDate reports whether the given date lies on or after the
// Gregorian reform of 1582-10-15. It uses a linear heuristic over the date
// fields, which is monotonic in the date and therefore exact for valid dates.
func GregorianByDate(year int, month time.Month, day float64) bool {
	return (float64(year)+float64(month)/12)*365.25+day > gregorianThreshold
}

// GregorianByJD reports whether the given Julian day lies on or after the
// Gregorian reform of 1582-10-15 at midnight.
func GregorianByJD(jd float64) bool {
	return math.Floor(jd+0.5) >= gregorianZ
}

// IsLeap reports whether February of the given year has 29 days, following
// the Julian rule before the reform and the Gregorian rule after it.
func IsLeap(year int) bool {
	if GregorianByDate(year, time.February, 28) {
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	}
	return year%4 == 0
}

var monthDays = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysIn returns the number of days in the given month, or 0 if month is
// not valid.
func DaysIn(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// Validate checks that the given date exists. The day may carry a fraction
// of a day. Fields outside their ranges result in an error wrapping
// ErrOutOfRange; a day in the reform gap or after the end of its month
// results in an error wrapping ErrInvalidDate.
func Validate(year int, month time.Month, day float64) error {
	if year < MinYear || year > MaxYear {
		return errs.OutOfRangef("year %d not in [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return errs.OutOfRangef("month %d not in [1, 12]", month)
	}
	if math.IsNaN(day) || day < 1 {
		return errs.InvalidDatef("day %v not in [1, %d]", day, DaysIn(year, month))
	}
	if n := DaysIn(year, month); day >= float64(n+1) {
		return errs.InvalidDatef("day %v not in [1, %d]", day, n)
	}
	if year == 1582 && month == time.October && day >= 5 && day < 15 {
		return errs.InvalidDatef("1582-10-%02d falls into the Gregorian reform", int(day))
	}
	return nil
}

// FromCivil returns the Julian day of the given date. The day may carry a
// fraction of a day, for example 1.5 is noon of the first day of the month.
func FromCivil(year int, month time.Month, day float64) (float64, error) {
	if err := Validate(year, month, day); err != nil {
		return 0, err
	}
	return meeus(year, month, day), nil
}

// meeus implements the forward transformation for a valid date.
func meeus(year int, month time.Month, day float64) float64 {
	y, m := year, int(month)
	if m <= 2 {
		y--
		m += 12
	}
	var b float64
	if GregorianByDate(year, month, day) {
		a := math.Trunc(float64(y) / 100)
		b = 2 - a + math.Trunc(a/4)
	}
	return math.Trunc(365.25*float64(y+4716)) + math.Trunc(30.6001*float64(m+1)) + day + b - 1524.5
}

// ToCivil returns the date of the given Julian day, together with the
// fraction of the day elapsed since midnight.
func ToCivil(jd float64) (year int, month time.Month, day int, frac float64, err error) {
	if math.IsNaN(jd) || jd < -0.5 {
		return 0, 0, 0, 0, errs.OutOfRangef("Julian day %v before -0.5", jd)
	}
	if jd >= meeus(MaxYear+1, time.January, 1) {
		return 0, 0, 0, 0, errs.OutOfRangef("Julian day %v after year %d", jd, MaxYear)
	}
	jd5 := jd + 0.5
	z := math.Floor(jd5)
	frac = jd5 - z
	a := z
	if GregorianByJD(jd) {
		alpha := math.Trunc((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Trunc(alpha/4)
	}
	b := a + 1524
	c := math.Trunc((b - 122.1) / 365.25)
	d := math.Trunc(365.25 * c)
	e := math.Trunc((b - d) / 30.6001)
	day = int(b - d - math.Trunc(30.6001*e))
	if e < 14 {
		month = time.Month(e - 1)
	} else {
		month = time.Month(e - 13)
	}
	if month > time.February {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day, frac, nil
}

// MJD returns the modified Julian day of the given date.
func MJD(year int, month time.Month, day float64) (float64, error) {
	jd, err := FromCivil(year, month, day)
	return jd - MJD0, err
}

// FromMJD returns the date of the given modified Julian day, see ToCivil.
func FromMJD(mjd float64) (year int, month time.Month, day int, frac float64, err error) {
	return ToCivil(mjd + MJD0)
}

// Weekday returns the day of the week of the civil day in which jd falls.
func Weekday(jd float64) time.Weekday {
	return time.Weekday(floorMod(math.Floor(jd+1.5), 7))
}

// ISOWeekday returns the ISO 8601 day of the week of the civil day in which
// jd falls, from 1 for Monday to 7 for Sunday.
func ISOWeekday(jd float64) int {
	return floorMod(math.Floor(jd+0.5), 7) + 1
}

func floorMod(x float64, n int) int {
	m := int(math.Mod(x, float64(n)))
	if m < 0 {
		m += n
	}
	return m
}

// Century returns the number of Julian centuries between J2000.0 and the
// Julian day jd1+jd2 (TT). Splitting the argument into an integer day and a
// fraction retains precision.
func Century(jd1, jd2 float64) float64 {
	return ((jd1 - J2000) + jd2) / DaysPerCentury
}

// BesselianYear returns the Besselian epoch of the given Julian day (TT).
func BesselianYear(jd float64) float64 {
	return 1900 + (jd-B1900)/DaysPerTropicalYear
}

// DayFraction returns the fraction of a day elapsed at the given clock time.
func DayFraction(hour, minute int, second float64) float64 {
	return (second + float64(minute)*60 + float64(hour)*3600) / secondsPerDay
}
