// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"gonih.org/calendar/internal/cache"
)

// These are predefined layouts for use in [Date.Format] and [Parse]. The
// reference date used in these layouts is the specific date:
//
//	January 2, 2006
//
// That value is recorded as the constant named [Layout], listed below. The date
// is chosen for compatibility with package [time]. Whether it is read as a
// Julian or a Gregorian date depends on the Engine of the formatted Date.
//
// The format specification works the same as [time.Layout], except that format
// specifiers related to time and timezones are treated as literals and
// otherwise ignored. Specifically, the recognized components are
//
//	Year: "2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2", "02"
//	Day of the year: "__2" "002"
//
// Four-digit years are prefixed with "-" if they are negative. For ISO week
// dates and other numbering schemes, see [Date.Strftime] and [Date.ISOFormat].
const (
	Layout  = "01/02 '06" // The reference date, in numerical order
	RFC822  = "02 Jan 06"
	RFC1123 = "02 Jan 2006"
	RFC3339 = "2006-01-02"
)

// Names of weekdays and months, indexed by time.Weekday and time.Month-1.
var (
	longDayNames    = names(7, func(i int) string { return time.Weekday(i).String() })
	shortDayNames   = abbrev(longDayNames)
	longMonthNames  = names(12, func(i int) string { return time.Month(i + 1).String() })
	shortMonthNames = abbrev(longMonthNames)
)

func names(n int, name func(int) string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name(i)
	}
	return out
}

// monthName returns the name of m from table, falling back to m.String() for
// the month 0 of the zero Date.
func monthName(table []string, m time.Month) string {
	if m < time.January || m > time.December {
		return m.String()
	}
	return table[m-1]
}

func abbrev(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n[:3]
	}
	return out
}

// inst is a single component of a layout string, either a literal string, or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging
func (i inst) String() string {
	if i.op == opLiteral {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opYear
	opNumMonth
	opLongYear
	opDay
	opUnderLongYear // package time treats this as "_"+opLongYear, but it is simpler to just handle it with an extra opcode
	opUnderDay
	opUnderYearDay

	opInvalid
)

// layoutElems holds the layout element of each operator.
var layoutElems = [opInvalid]string{
	opLiteral:       "<literal>",
	opLongMonth:     "January",
	opMonth:         "Jan",
	opLongWeekDay:   "Monday",
	opWeekDay:       "Mon",
	opZeroYearDay:   "002",
	opZeroMonth:     "01",
	opZeroDay:       "02",
	opYear:          "06",
	opNumMonth:      "1",
	opLongYear:      "2006",
	opDay:           "2",
	opUnderLongYear: "_2006",
	opUnderDay:      "_2",
	opUnderYearDay:  "__2",
}

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// element of the operator.
func (op fmtOp) String() string {
	if op < 0 || op >= opInvalid {
		panic("invalid fmtOp")
	}
	return layoutElems[op]
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// program is a compiled layout.
type program []inst

// Size implements cache.Sizer.
func (p program) Size() int64 {
	return int64(len(p)) + 1
}

// memoize compiled layout strings.
var memo = cache.Cache[string, program]{MaxSize: 1 << 12}

// LayoutCacheStats reports the number of compiled layouts kept in memory, and
// how many calls to Format and Parse found their layout compiled (hits) or
// had to compile it (misses).
func LayoutCacheStats() (layouts int, hits, misses int64) {
	hits, misses = memo.Stats()
	return memo.Len(), hits, misses
}

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) program {
	var prog program
	for len(layout) > 0 {
		prefix, op, suffix := nextOp(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if op != opLiteral {
			prog = append(prog, inst{op: op})
		}
		layout = suffix
	}
	return prog
}

// nextOp decomposes layout into the next operator, a literal prefix and the
// rest of the layout.
func nextOp(layout string) (prefix string, op fmtOp, suffix string) {
	for i := 0; i < len(layout); i++ {
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], op, suffix
		}
	}
	return layout, opLiteral, ""
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See the documentation for
// the constant called Layout to see how to represent the layout format.
func (d Date) Format(layout string) string {
	var buf [64]byte
	b := buf[:0]
	if n := len(layout) + 10; n > len(buf) {
		b = make([]byte, 0, n)
	}
	return string(d.AppendFormat(b, layout))
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) []byte {
	for _, i := range memo.Get(layout, parseLayout) {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := d.year % 100
			if y < 0 {
				y = -y
			}
			b = appendInt(b, y, 2, '0')
		case opUnderLongYear:
			b = appendYear(append(b, '_'), d.year)
		case opLongYear:
			b = appendYear(b, d.year)
		case opMonth:
			b = append(b, monthName(shortMonthNames, d.month)...)
		case opLongMonth:
			b = append(b, monthName(longMonthNames, d.month)...)
		case opNumMonth:
			b = appendInt(b, int(d.month), 1, '0')
		case opZeroMonth:
			b = appendInt(b, int(d.month), 2, '0')
		case opWeekDay:
			b = append(b, shortDayNames[d.Weekday()]...)
		case opLongWeekDay:
			b = append(b, longDayNames[d.Weekday()]...)
		case opDay:
			b = appendInt(b, d.day, 1, '0')
		case opUnderDay:
			b = appendInt(b, d.day, 2, ' ')
		case opZeroDay:
			b = appendInt(b, d.day, 2, '0')
		case opUnderYearDay:
			b = appendInt(b, d.YearDay(), 3, ' ')
		case opZeroYearDay:
			b = appendInt(b, d.YearDay(), 3, '0')
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b
}

// Parse parses a formatted string under the Default engine and returns the
// date value it represents. See the documentation for the constant called
// Layout to see how to represent the format. The second argument must be
// parseable using the format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. Four-digit years are in the range -4712…9999. The day of
// the week is checked for syntax but is otherwise ignored.
//
// For layouts specifying the two-digit year 06, a value NN >= 69 will be
// treated as 19NN and a value NN < 69 will be treated as 20NN.
//
// If the parsed fields do not form a valid date, the returned *ParseError
// also wraps ErrOutOfRange or ErrInvalidDate.
func Parse(layout, value string) (Date, error) {
	return defaultEngine.Parse(layout, value)
}

// Parse is like the package function Parse, but interprets the parsed fields
// under e.
func (e *Engine) Parse(layout, value string) (Date, error) {
	sc := layoutScanner{rest: value}
	var (
		year             int
		month, day, yday = -1, -1, -1
	)
	for _, i := range memo.Get(layout, parseLayout) {
		sc.begin(i)
		switch i.op {
		case opLiteral:
			sc.literal(i.lit)
		case opYear:
			// Two-digit years follow package time: 69-99 are in the 1900s.
			if year = sc.atoi(2); year >= 69 {
				year += 1900
			} else {
				year += 2000
			}
		case opUnderLongYear, opLongYear:
			if i.op == opUnderLongYear {
				sc.literal("_")
			}
			neg := sc.sign()
			sc.wantDigit()
			if year = sc.atoi(4); neg {
				year = -year
			}
		case opMonth:
			month = sc.lookup(shortMonthNames) + 1
		case opLongMonth:
			month = sc.lookup(longMonthNames) + 1
		case opNumMonth, opZeroMonth:
			month = sc.digits(2, i.op == opZeroMonth)
			if !sc.failed && (month < 1 || month > 12) {
				return Date{}, sc.errorf(layout, value, "month out of range")
			}
		case opWeekDay:
			sc.lookup(shortDayNames)
		case opLongWeekDay:
			sc.lookup(longDayNames)
		case opUnderDay, opDay, opZeroDay:
			if i.op == opUnderDay {
				sc.skip(' ', 1)
			}
			day = sc.digits(2, i.op == opZeroDay)
		case opUnderYearDay, opZeroYearDay:
			if i.op == opUnderYearDay {
				sc.skip(' ', 2)
			}
			yday = sc.digits(3, i.op == opZeroYearDay)
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if sc.failed {
			return Date{}, sc.errorf(layout, value, "")
		}
	}
	if sc.rest != "" {
		return Date{}, sc.errorf(layout, value, "extra text: " + strconv.Quote(sc.rest))
	}

	if year < MinYear || year > MaxYear {
		return Date{}, sc.wrap(layout, value, e.validate(year, time.January, 1))
	}
	if yday < 0 {
		if month < 0 {
			month = int(time.January)
		}
		if day < 0 {
			day = 1
		}
		d, err := e.Date(year, time.Month(month), day)
		if err != nil {
			return Date{}, sc.wrap(layout, value, err)
		}
		return d, nil
	}
	// The day of the year counts the days that exist under e, so it is
	// resolved through the Julian day number.
	if yday < 1 || yday > e.DaysInYear(year) {
		return Date{}, sc.errorf(layout, value, "day-of-year out of range")
	}
	d, err := e.FromJD(e.yearStart(year) + yday - 1)
	if err != nil {
		return Date{}, sc.wrap(layout, value, err)
	}
	if month >= 0 && month != int(d.month) {
		return Date{}, sc.errorf(layout, value, "day-of-year does not match month")
	}
	if day >= 0 && day != d.day {
		return Date{}, sc.errorf(layout, value, "day-of-year does not match day")
	}
	return d, nil
}

// layoutScanner consumes a value according to the instructions of a compiled
// layout. After a failure, all methods are no-ops.
//
// The scanner never holds the layout or the complete value. Both are passed
// to errorf and wrap instead, so that nothing stored in the scanner reaches
// the heap through a returned error.
type layoutScanner struct {
	// rest is the unconsumed input and at the input at the start of inst.
	rest, at string
	inst     inst
	failed   bool
}

func (s *layoutScanner) begin(i inst) {
	s.inst, s.at = i, s.rest
}

// errorf returns a *ParseError with the given message or, if msg is empty,
// pointing at the failed instruction.
//
// The strings are cloned, so the input of Parse does not escape and the happy
// path does not allocate.
func (s *layoutScanner) errorf(layout, value, msg string) error {
	pe := &ParseError{
		Layout:  layout,
		Value:   strings.Clone(value),
		Message: msg,
	}
	if msg == "" {
		pe.LayoutElem = strings.Clone(s.inst.String())
		pe.ValueElem = strings.Clone(s.at)
	}
	return pe
}

// wrap returns a *ParseError for parsed fields which do not form a valid date.
func (s *layoutScanner) wrap(layout, value string, err error) error {
	return &ParseError{
		Layout: layout,
		Value:  strings.Clone(value),
		Err:    err,
	}
}

// literal accepts lit, treating runs of spaces as equivalent.
func (s *layoutScanner) literal(lit string) {
	for !s.failed && lit != "" {
		if lit[0] == ' ' {
			if s.rest != "" && s.rest[0] != ' ' {
				s.failed = true
				return
			}
			s.rest = strings.TrimLeft(s.rest, " ")
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if s.rest == "" || s.rest[0] != lit[0] {
			s.failed = true
			return
		}
		lit, s.rest = lit[1:], s.rest[1:]
	}
}

// skip skips up to n leading bytes c.
func (s *layoutScanner) skip(c byte, n int) {
	for ; n > 0 && s.rest != "" && s.rest[0] == c; n-- {
		s.rest = s.rest[1:]
	}
}

// sign skips a '-' followed by a digit and reports whether there was one.
func (s *layoutScanner) sign() bool {
	if s.failed || len(s.rest) < 2 || s.rest[0] != '-' || !isDigit(s.rest[1]) {
		return false
	}
	s.rest = s.rest[1:]
	return true
}

// wantDigit fails, unless the input starts with a digit.
func (s *layoutScanner) wantDigit() {
	if s.rest == "" || !isDigit(s.rest[0]) {
		s.failed = true
	}
}

// atoi accepts the next n bytes as an integer, as strconv.Atoi does.
func (s *layoutScanner) atoi(n int) int {
	if s.failed || len(s.rest) < n {
		s.failed = true
		return 0
	}
	v, err := strconv.Atoi(s.rest[:n])
	if err != nil {
		s.failed = true
		return 0
	}
	s.rest = s.rest[n:]
	return v
}

// digits accepts one to n decimal digits, or exactly n if fixed.
func (s *layoutScanner) digits(n int, fixed bool) int {
	if s.failed {
		return 0
	}
	v, i := 0, 0
	for ; i < n && i < len(s.rest) && isDigit(s.rest[i]); i++ {
		v = v*10 + int(s.rest[i]-'0')
	}
	if i == 0 || (fixed && i != n) {
		s.failed = true
		return 0
	}
	s.rest = s.rest[i:]
	return v
}

// lookup accepts an element of table, ignoring case, and returns its index.
func (s *layoutScanner) lookup(table []string) int {
	if s.failed {
		return 0
	}
	for i, v := range table {
		if len(s.rest) >= len(v) && strings.EqualFold(s.rest[:len(v)], v) {
			s.rest = s.rest[len(v):]
			return i
		}
	}
	s.failed = true
	return 0
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// appendYear appends y with at least four digits, prefixed with '-' if it is
// negative.
func appendYear(b []byte, y int) []byte {
	if y < 0 {
		b = append(b, '-')
		y = -y
	}
	if y < 1000 {
		b = append(b, '0')
	}
	if y < 100 {
		b = append(b, '0')
	}
	if y < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(y), 10)
}
