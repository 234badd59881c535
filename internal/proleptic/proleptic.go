// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proleptic implements day ordinals of the proleptic Gregorian and
// Julian calendars. Ordinal 1 is January 1st of year 1 in the respective
// calendar. Years are astronomical, so year 0 is 1 BC and leap in both
// calendars.
//
// All functions assume valid arguments. Validation is the job of the caller.
package proleptic

import "time"

const (
	// GregorianJD is the Julian day number of Gregorian ordinal 0.
	GregorianJD = 1721425
	// JulianJD is the Julian day number of Julian ordinal 0.
	JulianJD = 1721423

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, counting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsGregorianLeap reports whether year is a leap year in the Gregorian
// calendar.
func IsGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsJulianLeap reports whether year is a leap year in the Julian calendar.
func IsJulianLeap(year int) bool {
	return year%4 == 0
}

// DaysIn returns the number of days in month m, given whether the year is a
// leap year. It returns 0 if m is not a valid month.
func DaysIn(m time.Month, leap bool) int {
	if m < time.January || m > time.December {
		return 0
	}
	if m == time.February && leap {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// GregorianOrdinal returns the Gregorian day ordinal of the given date.
func GregorianOrdinal(year int, month time.Month, day int) int {
	y := year - 1
	d := 365*y + FloorDiv(y, 4) - FloorDiv(y, 100) + FloorDiv(y, 400)
	d += daysBefore[month-1]
	if month > time.February && IsGregorianLeap(year) {
		d++
	}
	return d + day
}

// JulianOrdinal returns the Julian day ordinal of the given date.
func JulianOrdinal(year int, month time.Month, day int) int {
	y := year - 1
	d := 365*y + FloorDiv(y, 4)
	d += daysBefore[month-1]
	if month > time.February && IsJulianLeap(year) {
		d++
	}
	return d + day
}

// GregorianDate is the inverse of GregorianOrdinal.
func GregorianDate(ord int) (year int, month time.Month, day int) {
	d := ord - 1

	// Account for 400 year cycles. This is the only step where d may be
	// negative.
	n := FloorDiv(d, daysPer400Years)
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, d / daysPer100Years will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = y + 1
	month, day = monthDay(d, IsGregorianLeap(year))
	return year, month, day
}

// JulianDate is the inverse of JulianOrdinal.
func JulianDate(ord int) (year int, month time.Month, day int) {
	d := ord - 1

	n := FloorDiv(d, daysPer4Years)
	y := 4 * n
	d -= daysPer4Years * n

	// The last year of a cycle is the leap year, see GregorianDate.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = y + 1
	month, day = monthDay(d, IsJulianLeap(year))
	return year, month, day
}

// monthDay splits the zero-based day of the year yday into month and day.
func monthDay(yday int, leap bool) (month time.Month, day int) {
	day = yday
	if leap {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return time.February, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = time.Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++ // because January is 1
	return month, day - begin + 1
}

// GregorianJDN returns the Julian day number of the given Gregorian date.
func GregorianJDN(year int, month time.Month, day int) int {
	return GregorianOrdinal(year, month, day) + GregorianJD
}

// JulianJDN returns the Julian day number of the given Julian date.
func JulianJDN(year int, month time.Month, day int) int {
	return JulianOrdinal(year, month, day) + JulianJD
}

// GregorianFromJDN is the inverse of GregorianJDN.
func GregorianFromJDN(jdn int) (year int, month time.Month, day int) {
	return GregorianDate(jdn - GregorianJD)
}

// JulianFromJDN is the inverse of JulianJDN.
func JulianFromJDN(jdn int) (year int, month time.Month, day int) {
	return JulianDate(jdn - JulianJD)
}

// FloorDiv returns ⌊a/b⌋ for b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// FloorMod returns a - b*FloorDiv(a, b) for b > 0, which is in [0, b).
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
