// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar converts between civil dates and Julian day numbers, in
// the Julian and Gregorian calendars and across the reform between them.
//
// The package time always uses the proleptic Gregorian calendar. Historical
// and astronomical dates are often given in the Julian calendar instead, or
// in whichever calendar was in force at the time. An Engine captures that
// choice: by default, dates before 1582-10-15 are Julian and the ten days
// after 1582-10-04 do not exist. PureJulian, PureGregorian and Mixed provide
// other policies.
//
// A Date is a day in the years -4712 to 9999, where year 0 is 1 BC. It is
// represented by its fields and its modified Julian day (MJD), so dates under
// different engines can be compared and subtracted.
//
// Arithmetic on dates uses Duration, which spans about ±1.47 million years at
// nanosecond resolution. Only whole days can be added to a Date.
//
// Unlike package time, nothing is normalized: constructing an invalid date,
// like February 30th or 1582-10-10 under the Default engine, returns an
// error. All errors wrap one of ErrOutOfRange, ErrInvalidDate, ErrDomain,
// ErrOverflow or ErrParse.
package calendar

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/internal/proleptic"
)

// A Date is a calendar day under an Engine. Its zero value is not a valid
// date; use IsZero to detect it.
//
// Dates under different engines can refer to the same day, and Equal
// reports whether they do. Comparing Dates with == also compares their
// engines.
type Date struct {
	cal   *Engine
	year  int
	month time.Month
	day   int
	mjd   int
}

// Of returns the Date with the given fields under the Default engine.
func Of(year int, month time.Month, day int) (Date, error) {
	return defaultEngine.Date(year, month, day)
}

// MustOf is like Of, but panics if the date is invalid. It is intended for
// constants in programs and tests.
func MustOf(year int, month time.Month, day int) Date {
	d, err := Of(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromJD returns the Date of the given Julian day number under the Default
// engine.
func FromJD(jd int) (Date, error) {
	return defaultEngine.FromJD(jd)
}

// FromMJD returns the Date of the given modified Julian day under the
// Default engine.
func FromMJD(mjd int) (Date, error) {
	return defaultEngine.FromMJD(mjd)
}

// Today returns the current date in the given location, under the Default
// engine. A nil loc means time.Local.
func Today(loc *time.Location) Date {
	return defaultEngine.Today(loc)
}

// FromISOCalendar returns the Date of the given ISO 8601 week date under the
// Default engine.
func FromISOCalendar(year, week, weekday int) (Date, error) {
	return defaultEngine.FromISOCalendar(year, week, weekday)
}

// Engine returns the Engine under which d was constructed.
func (d Date) Engine() *Engine {
	if d.cal == nil {
		return defaultEngine
	}
	return d.cal
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Date returns the year, month and day of d.
func (d Date) Date() (year int, month time.Month, day int) {
	return d.year, d.month, d.day
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// MJD returns the modified Julian day of d.
func (d Date) MJD() int { return d.mjd }

// JD returns the Julian day number of d, which is the Julian day at noon.
func (d Date) JD() int { return d.mjd + MJD0 }

// JulianDay returns the Julian day at the start of d, for use with package
// julianday.
func (d Date) JulianDay() float64 { return float64(d.JD()) - 0.5 }

// IsGregorian reports whether d is a date of the Gregorian calendar.
func (d Date) IsGregorian() bool {
	return d.Engine().IsGregorian(d.year, d.month, d.day)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Engine().Weekday(d.JD())
}

// ISOWeekday returns the ISO 8601 day of the week of d, from 1 for Monday to
// 7 for Sunday.
func (d Date) ISOWeekday() int {
	return d.Engine().ISOWeekday(d.JD())
}

// ISOCalendar returns the ISO 8601 week date of d. Jan 01 to Jan 03 of year n
// might belong to week 52 or 53 of year n-1, and Dec 29 to Dec 31 might
// belong to week 1 of year n+1. For Julian dates, an error wrapping ErrDomain
// is returned.
func (d Date) ISOCalendar() (ISODate, error) {
	if !d.IsGregorian() {
		return ISODate{}, errs.Domainf("ISO week date of Julian date %s", d.ISOFormat())
	}
	return isoCalendar(d.JD()), nil
}

// YearDay returns the day of the year of d, counting only days that exist
// under its engine.
func (d Date) YearDay() int {
	return d.JD() - d.Engine().yearStart(d.year) + 1
}

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.mjd == o.mjd }

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.mjd < o.mjd }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.mjd > o.mjd }

// Compare returns -1 if d is before o, 0 if they are the same day and +1 if
// d is after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.mjd < o.mjd:
		return -1
	case d.mjd > o.mjd:
		return 1
	}
	return 0
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) (Date, error) {
	if n > maxJDN || n < -maxJDN {
		return Date{}, errs.OutOfRangef("adding %d days", n)
	}
	return d.Engine().FromMJD(d.mjd + n)
}

// Add returns d+dur. dur must be a whole number of days, otherwise an error
// wrapping ErrDomain is returned.
func (d Date) Add(dur Duration) (Date, error) {
	if !dur.wholeDays() {
		return Date{}, errs.Domainf("nonzero fraction in date arithmetic: %v", dur)
	}
	return d.AddDays(int(dur.Days()))
}

// SubDuration returns d-dur. dur must be a whole number of days, otherwise
// an error wrapping ErrDomain is returned.
func (d Date) SubDuration(dur Duration) (Date, error) {
	if !dur.wholeDays() {
		return Date{}, errs.Domainf("nonzero fraction in date arithmetic: %v", dur)
	}
	return d.AddDays(-int(dur.Days()))
}

// Sub returns the Duration d-o, which is always a whole number of days.
func (d Date) Sub(o Date) Duration {
	return Duration{days: int64(d.mjd - o.mjd)}
}

// AddDate returns the date corresponding to adding the given number of years,
// months, and days to d. For example, AddDate(-1, 2, 3) applied to January 1,
// 2011 returns March 4, 2010.
//
// Months are normalized into years first. Then the day is counted from the
// first of the resulting month, so adding one month to October 31 yields
// December 1, and days skipped by the reform are skipped again.
func (d Date) AddDate(years, months, days int) (Date, error) {
	if days > maxJDN || days < -maxJDN {
		return Date{}, errs.OutOfRangef("adding %d days", days)
	}
	y, m := norm(d.year+years, int(d.month)-1+months, 12)
	e := d.Engine()
	first, err := e.firstOfMonth(y, time.Month(m+1))
	if err != nil {
		return Date{}, err
	}
	return e.FromJD(first + d.day - 1 + days)
}

// firstOfMonth returns the Julian day number of the first existing day of
// the given month.
func (e *Engine) firstOfMonth(year int, month time.Month) (int, error) {
	if err := e.validate(year, month, 1); err != nil {
		return 0, err
	}
	var jd int
	if e.IsGregorian(year, month, 1) {
		jd = proleptic.GregorianJDN(year, month, 1)
	} else {
		jd = proleptic.JulianJDN(year, month, 1)
	}
	if e.low <= jd && jd < e.high {
		return e.low, nil
	}
	return jd, nil
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm[T int | int64](hi, lo, base T) (nhi, nlo T) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// WithYear returns d with the year replaced.
func (d Date) WithYear(year int) (Date, error) {
	return d.Engine().Date(year, d.month, d.day)
}

// WithMonth returns d with the month replaced.
func (d Date) WithMonth(month time.Month) (Date, error) {
	return d.Engine().Date(d.year, month, d.day)
}

// WithDay returns d with the day of the month replaced.
func (d Date) WithDay(day int) (Date, error) {
	return d.Engine().Date(d.year, d.month, day)
}

// In returns the same day as d, expressed under the Engine e.
func (d Date) In(e *Engine) (Date, error) {
	return e.FromJD(d.JD())
}

// Gregorian returns the date of d in the proleptic Gregorian calendar.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	return proleptic.GregorianFromJDN(d.JD())
}

// Julian returns the date of d in the proleptic Julian calendar.
func (d Date) Julian() (year int, month time.Month, day int) {
	return proleptic.JulianFromJDN(d.JD())
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	if d.Engine() == defaultEngine {
		return fmt.Sprintf("calendar.MustOf(%d, %d, %d)", d.year, d.month, d.day)
	}
	return fmt.Sprintf("calendar.Date{%s %d-%d-%d}", d.Engine(), d.year, d.month, d.day)
}

// String returns d in ISO 8601 format, prefixed by "G" for Gregorian dates
// and "J" for Julian dates, for example "J1582-10-04" and "G1582-10-15".
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	c := byte('J')
	if d.IsGregorian() {
		c = 'G'
	}
	return string(d.AppendFormat([]byte{c}, RFC3339))
}

// Time returns the given moment in time of d in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	y, m, day := d.Gregorian()
	return time.Date(y, m, day, hour, min, sec, nsec, loc)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] of its modified Julian day. The engine is
// not encoded; UnmarshalBinary decodes under the engine of its receiver.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d.mjd))], nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(nil, RFC3339), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// date is decoded under the engine of d, or the Default engine if d is
// the zero Date.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || int64(int(v)) != v:
		return errors.New("encoded date overflows int")
	case i != len(b):
		return errors.New("extra data after date")
	}
	nd, err := d.Engine().FromMJD(int(v))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format, see ParseISO. It is decoded under the engine
// of d, or the Default engine if d is the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := d.Engine().ParseISO(string(b))
	if err == nil {
		*d = v
	}
	return err
}
