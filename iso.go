// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// ISOFormat returns d in the ISO 8601 extended format, for example
// "2025-01-11" or "-0044-03-15". The fields are those of the calendar in
// force under the engine of d.
func (d Date) ISOFormat() string {
	b := appendYear(make([]byte, 0, 16), d.year)
	return string(fmt.Appendf(b, "-%02d-%02d", int(d.month), d.day))
}

// ISOWeekFormat returns the ISO 8601 week date of d in extended format, for
// example "2004-W01-1". For Julian dates, an error wrapping ErrDomain is
// returned.
func (d Date) ISOWeekFormat() (string, error) {
	w, err := d.ISOCalendar()
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

// ParseISO parses an ISO 8601 calendar or week date under the Default engine.
// See Engine.ParseISO.
func ParseISO(s string) (Date, error) {
	return defaultEngine.ParseISO(s)
}

// ParseISO parses an ISO 8601 date under e. The accepted forms are
//
//	[±]YYYY-MM-DD    [±]YYYYMMDD
//	[±]YYYY-Www-D    [±]YYYYWwwD
//	[±]YYYY-Www      [±]YYYYWww
//
// A week date without a day denotes the Monday of that week. Full-width
// digits and signs are accepted. Extended and basic format can not be mixed.
//
// Syntax errors are reported as a *ParseError carrying the offending part of
// s. If the fields do not form a date under e, the *ParseError also wraps
// ErrOutOfRange, ErrInvalidDate or ErrDomain.
func (e *Engine) ParseISO(s string) (Date, error) {
	sc := isoScanner{s: width.Narrow.String(s)}

	neg := false
	switch sc.peek() {
	case '-':
		neg = true
		sc.i++
	case '+':
		sc.i++
	}
	year, ok := sc.digits(4)
	if !ok {
		return Date{}, sc.fail(s)
	}
	if neg {
		year = -year
	}
	ext := sc.peek() == '-'
	if ext {
		sc.i++
	}

	var (
		d   Date
		err error
	)
	if c := sc.peek(); c == 'W' || c == 'w' {
		sc.i++
		week, ok := sc.digits(2)
		if !ok {
			return Date{}, sc.fail(s)
		}
		weekday := 1
		if !sc.done() {
			if ext && !sc.accept('-') {
				return Date{}, sc.fail(s)
			}
			if weekday, ok = sc.digits(1); !ok {
				return Date{}, sc.fail(s)
			}
		}
		if !sc.done() {
			return Date{}, sc.fail(s)
		}
		d, err = e.FromISOCalendar(year, week, weekday)
	} else {
		month, ok := sc.digits(2)
		if !ok {
			return Date{}, sc.fail(s)
		}
		if ext && !sc.accept('-') {
			return Date{}, sc.fail(s)
		}
		day, ok := sc.digits(2)
		if !ok || !sc.done() {
			return Date{}, sc.fail(s)
		}
		d, err = e.Date(year, time.Month(month), day)
	}
	if err != nil {
		return Date{}, &ParseError{Value: strings.Clone(s), Err: err}
	}
	return d, nil
}

// isoScanner consumes an ISO 8601 date from left to right.
type isoScanner struct {
	s string
	i int
}

func (sc *isoScanner) done() bool {
	return sc.i >= len(sc.s)
}

func (sc *isoScanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.s[sc.i]
}

func (sc *isoScanner) accept(c byte) bool {
	if sc.peek() != c {
		return false
	}
	sc.i++
	return true
}

// digits consumes exactly n decimal digits.
func (sc *isoScanner) digits(n int) (int, bool) {
	if len(sc.s)-sc.i < n {
		return 0, false
	}
	v := 0
	for _, c := range []byte(sc.s[sc.i : sc.i+n]) {
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	sc.i += n
	return v, true
}

// fail returns a ParseError for the unconsumed rest of the input.
func (sc *isoScanner) fail(value string) error {
	return &ParseError{
		Value:     strings.Clone(value),
		ValueElem: sc.s[sc.i:],
	}
}
