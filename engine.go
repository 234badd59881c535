// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/internal/proleptic"
)

const (
	// MinYear and MaxYear bound the years of all dates.
	MinYear = -4712
	MaxYear = 9999

	// MJD0 is the Julian day number of the day before the epoch of the
	// modified Julian day. The MJD of a date is its JD minus MJD0.
	MJD0 = 2400001
)

// Bounds of the Julian day numbers of valid dates under any Engine.
var (
	minJDN = proleptic.JulianJDN(MinYear, time.January, 1)
	maxJDN = proleptic.JulianJDN(MaxYear, time.December, 31)
)

// civil is a date as a comparable triple. Dates are ordered
// lexicographically.
type civil struct {
	year  int
	month time.Month
	day   int
}

func (c civil) before(o civil) bool {
	if c.year != o.year {
		return c.year < o.year
	}
	if c.month != o.month {
		return c.month < o.month
	}
	return c.day < o.day
}

// An Engine converts between civil dates and Julian day numbers, according to
// a policy of when the Gregorian calendar replaced the Julian calendar. Dates
// before the reform date are Julian, dates on or after it are Gregorian.
// Julian day numbers between the last Julian and the first Gregorian day do
// not exist.
//
// An Engine is immutable and safe for concurrent use. To change the policy,
// create a new Engine.
type Engine struct {
	// reform is the first Gregorian date.
	reform civil
	// low is the Julian day number of reform, high the Julian day number the
	// reform date would have in the Julian calendar. Day numbers in
	// [low, high) are not part of either calendar.
	low, high int
	name      string
}

var (
	defaultEngine = mustMixed(1582, time.October, 15, "default")

	pureJulian = &Engine{
		reform: civil{math.MaxInt, time.January, 1},
		low:    math.MaxInt,
		high:   math.MaxInt,
		name:   "julian",
	}

	pureGregorian = &Engine{
		reform: civil{math.MinInt, time.January, 1},
		low:    math.MinInt,
		high:   math.MinInt,
		name:   "gregorian",
	}
)

// Default returns the Engine reforming on 1582-10-15, following
// 1582-10-04. This is the reform as decreed by Pope Gregory XIII.
func Default() *Engine { return defaultEngine }

// PureJulian returns an Engine which uses the proleptic Julian calendar
// for all dates.
func PureJulian() *Engine { return pureJulian }

// PureGregorian returns an Engine which uses the proleptic Gregorian calendar
// for all dates.
func PureGregorian() *Engine { return pureGregorian }

// Mixed returns an Engine with the given first Gregorian date, which must be
// a valid Gregorian date no earlier than 0200-03-01. Before that date, the
// Julian calendar runs ahead of the Gregorian calendar, so a reform would
// repeat days instead of skipping them.
//
// For example, Mixed(1752, 9, 14) models the adoption of the Gregorian
// calendar in Great Britain.
func Mixed(year int, month time.Month, day int) (*Engine, error) {
	if year < MinYear || year > MaxYear {
		return nil, errs.OutOfRangef("reform year %d not in [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return nil, errs.OutOfRangef("reform month %d not in [1, 12]", month)
	}
	if n := proleptic.DaysIn(month, proleptic.IsGregorianLeap(year)); day < 1 || day > n {
		return nil, errs.OutOfRangef("reform day %d not in [1, %d]", day, n)
	}
	r := civil{year, month, day}
	if r.before(civil{200, time.March, 1}) {
		return nil, errs.OutOfRangef("reform %s before 0200-03-01", formatCivil(r))
	}
	return &Engine{
		reform: r,
		low:    proleptic.GregorianJDN(year, month, day),
		high:   proleptic.JulianJDN(year, month, day),
		name:   formatCivil(r),
	}, nil
}

func mustMixed(year int, month time.Month, day int, name string) *Engine {
	e, err := Mixed(year, month, day)
	if err != nil {
		panic(err)
	}
	e.name = name
	return e
}

// ParseReform returns the Engine described by s, which is one of "default",
// "julian", "gregorian" or a reform date formatted as "YYYY-MM-DD". It is the
// inverse of Engine.String.
func ParseReform(s string) (*Engine, error) {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "", "default":
		return Default(), nil
	case "julian":
		return PureJulian(), nil
	case "gregorian":
		return PureGregorian(), nil
	}
	var (
		y, m, d int
		rest    string
	)
	if n, _ := fmt.Sscanf(t, "%d-%d-%d%s", &y, &m, &d, &rest); n != 3 {
		return nil, &ParseError{Value: s, Message: "reform must be default, julian, gregorian or YYYY-MM-DD"}
	}
	return Mixed(y, time.Month(m), d)
}

// String returns a description of the policy of e, suitable for ParseReform.
func (e *Engine) String() string {
	return e.name
}

// Reform returns the first Gregorian date of e. ok is false for PureJulian
// and PureGregorian.
func (e *Engine) Reform() (year int, month time.Month, day int, ok bool) {
	if e == pureJulian || e == pureGregorian {
		return 0, 0, 0, false
	}
	return e.reform.year, e.reform.month, e.reform.day, true
}

// IsGregorian reports whether the given date lies on or after the reform.
func (e *Engine) IsGregorian(year int, month time.Month, day int) bool {
	return !civil{year, month, day}.before(e.reform)
}

// IsLeap reports whether February of year has 29 days. The Gregorian rule
// is used, if February 29th of that year lies on or after the reform.
func (e *Engine) IsLeap(year int) bool {
	if e.IsGregorian(year, time.February, 29) {
		return proleptic.IsGregorianLeap(year)
	}
	return proleptic.IsJulianLeap(year)
}

// DaysIn returns the number of the last day of the given month, or 0 if month
// is not valid. In the month of the reform, some of the days before it do not
// exist.
func (e *Engine) DaysIn(year int, month time.Month) int {
	return proleptic.DaysIn(month, e.IsLeap(year))
}

// validate checks that the given date exists under e.
func (e *Engine) validate(year int, month time.Month, day int) error {
	if year < MinYear || year > MaxYear {
		return errs.OutOfRangef("year %d not in [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return errs.OutOfRangef("month %d not in [1, 12]", month)
	}
	if n := e.DaysIn(year, month); day < 1 || day > n {
		return errs.InvalidDatef("day %d not in [1, %d]", day, n)
	}
	return nil
}

// jdn returns the Julian day number of a date which passed validate.
func (e *Engine) jdn(year int, month time.Month, day int) (int, error) {
	if e.IsGregorian(year, month, day) {
		return proleptic.GregorianJDN(year, month, day), nil
	}
	jd := proleptic.JulianJDN(year, month, day)
	if e.low <= jd && jd < e.high {
		return 0, errs.InvalidDatef("%s falls into the calendar reform %s", formatCivil(civil{year, month, day}), formatCivil(e.reform))
	}
	return jd, nil
}

// JD returns the Julian day number of the given date, that is the Julian day
// at noon of that date.
func (e *Engine) JD(year int, month time.Month, day int) (int, error) {
	if err := e.validate(year, month, day); err != nil {
		return 0, err
	}
	return e.jdn(year, month, day)
}

// MJD returns the modified Julian day of the given date.
func (e *Engine) MJD(year int, month time.Month, day int) (int, error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return 0, err
	}
	return jd - MJD0, nil
}

// fromJDN returns the date of the given Julian day number.
func (e *Engine) fromJDN(jd int) (year int, month time.Month, day int, err error) {
	if jd < minJDN || jd > maxJDN {
		return 0, 0, 0, errs.OutOfRangef("Julian day %d not in [%d, %d]", jd, minJDN, maxJDN)
	}
	if jd >= e.low {
		year, month, day = proleptic.GregorianFromJDN(jd)
	} else {
		year, month, day = proleptic.JulianFromJDN(jd)
	}
	if err := e.validate(year, month, day); err != nil {
		return 0, 0, 0, fmt.Errorf("Julian day %d: %w", jd, err)
	}
	return year, month, day, nil
}

// Date returns the Date with the given fields under e. Unlike time.Date, the
// fields are validated, not normalized.
func (e *Engine) Date(year int, month time.Month, day int) (Date, error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: e, year: year, month: month, day: day, mjd: jd - MJD0}, nil
}

// FromJD returns the Date of the given Julian day number.
func (e *Engine) FromJD(jd int) (Date, error) {
	y, m, d, err := e.fromJDN(jd)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: e, year: y, month: m, day: d, mjd: jd - MJD0}, nil
}

// FromMJD returns the Date of the given modified Julian day.
func (e *Engine) FromMJD(mjd int) (Date, error) {
	if mjd > math.MaxInt-MJD0 {
		return Date{}, errs.OutOfRangef("modified Julian day %d", mjd)
	}
	return e.FromJD(mjd + MJD0)
}

// FromGregorian returns the Date of the given day of the proleptic Gregorian
// calendar, expressed in the calendar in force under e.
func (e *Engine) FromGregorian(year int, month time.Month, day int) (Date, error) {
	if err := PureGregorian().validate(year, month, day); err != nil {
		return Date{}, err
	}
	return e.FromJD(proleptic.GregorianJDN(year, month, day))
}

// FromJulian returns the Date of the given day of the proleptic Julian
// calendar, expressed in the calendar in force under e.
func (e *Engine) FromJulian(year int, month time.Month, day int) (Date, error) {
	if err := PureJulian().validate(year, month, day); err != nil {
		return Date{}, err
	}
	return e.FromJD(proleptic.JulianJDN(year, month, day))
}

// ToGregorian converts the given date to the proleptic Gregorian calendar.
func (e *Engine) ToGregorian(year int, month time.Month, day int) (y int, m time.Month, d int, err error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return 0, 0, 0, err
	}
	y, m, d = proleptic.GregorianFromJDN(jd)
	return y, m, d, nil
}

// ToJulian converts the given date to the proleptic Julian calendar.
func (e *Engine) ToJulian(year int, month time.Month, day int) (y int, m time.Month, d int, err error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return 0, 0, 0, err
	}
	y, m, d = proleptic.JulianFromJDN(jd)
	return y, m, d, nil
}

// Today returns the current date in the given location. A nil loc means
// time.Local.
func (e *Engine) Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	d, err := e.FromGregorian(time.Now().In(loc).Date())
	if err != nil {
		panic(err)
	}
	return d
}

// yearStart returns the Julian day number of the first existing day of year.
func (e *Engine) yearStart(year int) int {
	var jd int
	if e.IsGregorian(year, time.January, 1) {
		jd = proleptic.GregorianJDN(year, time.January, 1)
	} else {
		jd = proleptic.JulianJDN(year, time.January, 1)
	}
	if e.low <= jd && jd < e.high {
		return e.low
	}
	return jd
}

// DaysInYear returns the number of days in year. In the year of the reform,
// this is less than 365.
func (e *Engine) DaysInYear(year int) int {
	return e.yearStart(year+1) - e.yearStart(year)
}

// YearDay returns the day of the year of the given date, counting the days
// that exist under e.
func (e *Engine) YearDay(year int, month time.Month, day int) (int, error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return 0, err
	}
	return jd - e.yearStart(year) + 1, nil
}

// Weekday returns the day of the week of the given Julian day number.
func (e *Engine) Weekday(jd int) time.Weekday {
	return time.Weekday(proleptic.FloorMod(jd+1, 7))
}

// ISOWeekday returns the ISO 8601 day of the week of the given Julian day
// number, from 1 for Monday to 7 for Sunday.
func (e *Engine) ISOWeekday(jd int) int {
	return proleptic.FloorMod(jd, 7) + 1
}

// ISOCalendar returns the ISO 8601 week date of the given date. ISO week
// dates are only defined for Gregorian dates; for Julian dates, an error
// wrapping ErrDomain is returned.
func (e *Engine) ISOCalendar(year int, month time.Month, day int) (ISODate, error) {
	jd, err := e.JD(year, month, day)
	if err != nil {
		return ISODate{}, err
	}
	if !e.IsGregorian(year, month, day) {
		return ISODate{}, errs.Domainf("ISO week date of Julian date %s", formatCivil(civil{year, month, day}))
	}
	return isoCalendar(jd), nil
}

// isoCalendar computes the ISO 8601 week date of a Julian day number in the
// proleptic Gregorian calendar. The ISO year is the year of the Thursday of
// the same week.
func isoCalendar(jd int) ISODate {
	wd := proleptic.FloorMod(jd, 7) + 1
	thursday := jd + 4 - wd
	y, _, _ := proleptic.GregorianFromJDN(thursday)
	jan1 := proleptic.GregorianJDN(y, time.January, 1)
	return ISODate{
		Year:    y,
		Week:    (thursday-jan1)/7 + 1,
		Weekday: wd,
	}
}

// FromISOCalendar returns the Date of the given ISO 8601 week date. The
// result must be a Gregorian date under e, otherwise an error wrapping
// ErrDomain is returned.
func (e *Engine) FromISOCalendar(year, week, weekday int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errs.OutOfRangef("ISO year %d not in [%d, %d]", year, MinYear, MaxYear)
	}
	if n := ISOWeeksInYear(year); week < 1 || week > n {
		return Date{}, errs.OutOfRangef("ISO week %d not in [1, %d]", week, n)
	}
	if weekday < 1 || weekday > 7 {
		return Date{}, errs.OutOfRangef("ISO weekday %d not in [1, 7]", weekday)
	}
	jan4 := proleptic.GregorianJDN(year, time.January, 4)
	monday := jan4 - proleptic.FloorMod(jan4, 7)
	jd := monday + 7*(week-1) + weekday - 1
	if jd < e.low {
		return Date{}, errs.Domainf("ISO week date %v is before the calendar reform", ISODate{year, week, weekday})
	}
	return e.FromJD(jd)
}

// ISOWeeksInYear returns the number of weeks in the given ISO year, which
// is either 52 or 53.
func ISOWeeksInYear(year int) int {
	p := func(y int) int {
		return proleptic.FloorMod(y+proleptic.FloorDiv(y, 4)-proleptic.FloorDiv(y, 100)+proleptic.FloorDiv(y, 400), 7)
	}
	if p(year) == 4 || p(year-1) == 3 {
		return 53
	}
	return 52
}

// ISODate is an ISO 8601 week date.
type ISODate struct {
	Year    int
	Week    int // 1 to 53
	Weekday int // 1 (Monday) to 7 (Sunday)
}

// String formats d in the ISO 8601 extended format, e.g. "2004-W01-1".
func (d ISODate) String() string {
	b := appendYear(make([]byte, 0, 16), d.Year)
	return string(fmt.Appendf(b, "-W%02d-%d", d.Week, d.Weekday))
}

func formatCivil(c civil) string {
	b := appendYear(make([]byte, 0, 16), c.year)
	return string(fmt.Appendf(b, "-%02d-%02d", int(c.month), c.day))
}
