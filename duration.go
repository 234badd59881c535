// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"gonih.org/calendar/internal/errs"
)

const (
	nsPerMicrosecond = 1000
	nsPerMillisecond = 1000 * nsPerMicrosecond
	nsPerSecond      = 1000 * nsPerMillisecond
	nsPerMinute      = 60 * nsPerSecond
	nsPerHour        = 60 * nsPerMinute
	nsPerDay         = 24 * nsPerHour
	nsPerWeek        = 7 * nsPerDay

	// MaxDurationDays bounds the number of days in a Duration.
	MaxDurationDays = 1<<29 - 1
)

var (
	decDay = decimal.NewFromInt(nsPerDay)
	decSec = decimal.NewFromInt(nsPerSecond)
)

// A Duration is a signed span of time with nanosecond resolution, covering
// about ±1.47 million years. Unlike time.Duration it can express the
// difference between any two dates.
//
// A Duration is stored as a number of days and a non-negative number of
// nanoseconds less than a day, so -1ns is -1 day plus 23:59:59.999999999.
// All arithmetic rounds towards negative infinity, unless documented
// otherwise.
//
// Durations can be compared with == and used as map keys. The zero value is
// the empty Duration.
type Duration struct {
	days int64
	nsec int64
}

var (
	// MinDuration is the most negative Duration.
	MinDuration = Duration{days: -MaxDurationDays}
	// MaxDuration is the most positive Duration.
	MaxDuration = Duration{days: MaxDurationDays, nsec: nsPerDay - 1}
	// Resolution is the smallest positive Duration.
	Resolution = Duration{nsec: 1}
)

// Span lists the components of a Duration. All fields may be negative.
type Span struct {
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
	Nanoseconds  int64
}

// Duration returns the sum of the components of s.
func (s Span) Duration() (Duration, error) {
	var t decimal.Decimal
	for _, c := range [...]struct {
		n, unit int64
	}{
		{s.Weeks, nsPerWeek},
		{s.Days, nsPerDay},
		{s.Hours, nsPerHour},
		{s.Minutes, nsPerMinute},
		{s.Seconds, nsPerSecond},
		{s.Milliseconds, nsPerMillisecond},
		{s.Microseconds, nsPerMicrosecond},
		{s.Nanoseconds, 1},
	} {
		if c.n != 0 {
			t = t.Add(decimal.NewFromInt(c.n).Mul(decimal.NewFromInt(c.unit)))
		}
	}
	return fromNanos(t)
}

// NewDuration returns the Duration of the given number of days plus the
// given number of nanoseconds.
func NewDuration(days, nsec int64) (Duration, error) {
	d, n := norm(days, nsec, nsPerDay)
	return checked(d, n)
}

// Days returns the Duration of n days.
func Days(n int64) (Duration, error) {
	return checked(n, 0)
}

// FromStd returns the Duration equivalent to d.
func FromStd(d time.Duration) Duration {
	days, nsec := norm(0, int64(d), nsPerDay)
	return Duration{days: days, nsec: nsec}
}

// DurationFromSeconds returns the Duration of the given number of seconds,
// rounded to the nearest nanosecond. Ties are rounded to even.
func DurationFromSeconds(s decimal.Decimal) (Duration, error) {
	return fromNanos(s.Mul(decSec).RoundBank(0))
}

// checked returns the Duration of a normalized pair, if it is in range.
func checked(days, nsec int64) (Duration, error) {
	if days < -MaxDurationDays || days > MaxDurationDays {
		return Duration{}, errs.Overflowf("duration of %d days exceeds ±%d days", days, MaxDurationDays)
	}
	return Duration{days: days, nsec: nsec}, nil
}

// fromNanos converts an integral number of nanoseconds.
func fromNanos(t decimal.Decimal) (Duration, error) {
	q, r := floorQuoRem(t, decDay)
	if q.Cmp(decimal.NewFromInt(-MaxDurationDays)) < 0 || q.Cmp(decimal.NewFromInt(MaxDurationDays)) > 0 {
		return Duration{}, errs.Overflowf("duration of %s days exceeds ±%d days", q, MaxDurationDays)
	}
	return Duration{days: q.IntPart(), nsec: r.IntPart()}, nil
}

// floorQuoRem returns the integer quotient ⌊a/b⌋ and the remainder, which
// has the sign of b.
func floorQuoRem(a, b decimal.Decimal) (q, r decimal.Decimal) {
	q, r = a.QuoRem(b, 0)
	if !r.IsZero() && r.Sign() != b.Sign() {
		q = q.Sub(decimal.NewFromInt(1))
		r = r.Add(b)
	}
	return q, r
}

// roundQuo returns a/b rounded to the nearest integer, with ties rounded to
// even.
func roundQuo(a, b decimal.Decimal) decimal.Decimal {
	q, r := floorQuoRem(a, b)
	// Now 0 <= r/b < 1, compare it to 1/2.
	switch c := r.Abs().Mul(decimal.NewFromInt(2)).Cmp(b.Abs()); {
	case c > 0:
		q = q.Add(decimal.NewFromInt(1))
	case c == 0 && q.Mod(decimal.NewFromInt(2)).Abs().Equal(decimal.NewFromInt(1)):
		q = q.Add(decimal.NewFromInt(1))
	}
	return q
}

// TotalNanoseconds returns the length of d in nanoseconds.
func (d Duration) TotalNanoseconds() decimal.Decimal {
	return decimal.NewFromInt(d.days).Mul(decDay).Add(decimal.NewFromInt(d.nsec))
}

// TotalSeconds returns the length of d in seconds.
func (d Duration) TotalSeconds() decimal.Decimal {
	return d.TotalNanoseconds().Div(decSec)
}

// TotalDays returns the length of d in days.
func (d Duration) TotalDays() decimal.Decimal {
	return d.TotalNanoseconds().Div(decDay)
}

// Days returns the number of whole days in d, rounded towards negative
// infinity.
func (d Duration) Days() int64 {
	return d.days
}

// Seconds returns the number of whole seconds in d after subtracting
// Days, in the range [0, 86399].
func (d Duration) Seconds() int64 {
	return d.nsec / nsPerSecond
}

// Nanoseconds returns the nanoseconds in d after subtracting Days and
// Seconds, in the range [0, 999999999].
func (d Duration) Nanoseconds() int64 {
	return d.nsec % nsPerSecond
}

// IsZero reports whether d is the empty Duration.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// wholeDays reports whether d is a whole number of days.
func (d Duration) wholeDays() bool {
	return d.nsec == 0
}

// Std returns d as a time.Duration. It returns an error wrapping ErrOverflow
// if d exceeds the range of time.Duration.
func (d Duration) Std() (time.Duration, error) {
	const maxDays = math.MaxInt64 / nsPerDay
	if d.days < -maxDays-1 || d.days > maxDays {
		return 0, errs.Overflowf("%v exceeds the range of time.Duration", d)
	}
	t := d.TotalNanoseconds()
	if !t.Equal(decimal.NewFromInt(t.IntPart())) {
		return 0, errs.Overflowf("%v exceeds the range of time.Duration", d)
	}
	return time.Duration(t.IntPart()), nil
}

// Compare returns -1 if d < o, 0 if d == o and +1 if d > o.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.days < o.days:
		return -1
	case d.days > o.days:
		return 1
	case d.nsec < o.nsec:
		return -1
	case d.nsec > o.nsec:
		return 1
	}
	return 0
}

// Add returns d+o.
func (d Duration) Add(o Duration) (Duration, error) {
	days, nsec := norm(d.days+o.days, d.nsec+o.nsec, nsPerDay)
	return checked(days, nsec)
}

// Sub returns d-o.
func (d Duration) Sub(o Duration) (Duration, error) {
	days, nsec := norm(d.days-o.days, d.nsec-o.nsec, nsPerDay)
	return checked(days, nsec)
}

// Neg returns -d.
func (d Duration) Neg() (Duration, error) {
	days, nsec := norm(-d.days, -d.nsec, nsPerDay)
	return checked(days, nsec)
}

// Abs returns the absolute value of d.
func (d Duration) Abs() (Duration, error) {
	if d.days < 0 {
		return d.Neg()
	}
	return d, nil
}

// Mul returns d*n.
func (d Duration) Mul(n int64) (Duration, error) {
	return fromNanos(d.TotalNanoseconds().Mul(decimal.NewFromInt(n)))
}

// MulDecimal returns d*f, rounded to the nearest nanosecond. Ties are rounded
// to even.
func (d Duration) MulDecimal(f decimal.Decimal) (Duration, error) {
	return fromNanos(d.TotalNanoseconds().Mul(f).RoundBank(0))
}

// Div returns d/n, rounded to the nearest nanosecond. Ties are rounded to
// even.
func (d Duration) Div(n int64) (Duration, error) {
	if n == 0 {
		return Duration{}, errs.Domainf("division of duration by zero")
	}
	return fromNanos(roundQuo(d.TotalNanoseconds(), decimal.NewFromInt(n)))
}

// FloorDiv returns ⌊d/n⌋, in nanoseconds.
func (d Duration) FloorDiv(n int64) (Duration, error) {
	if n == 0 {
		return Duration{}, errs.Domainf("division of duration by zero")
	}
	q, _ := floorQuoRem(d.TotalNanoseconds(), decimal.NewFromInt(n))
	return fromNanos(q)
}

// Ratio returns d/o.
func (d Duration) Ratio(o Duration) (decimal.Decimal, error) {
	if o.IsZero() {
		return decimal.Decimal{}, errs.Domainf("division by zero duration")
	}
	return d.TotalNanoseconds().Div(o.TotalNanoseconds()), nil
}

// DivMod returns q = ⌊d/o⌋ and r = d - q*o. r has the sign of o.
func (d Duration) DivMod(o Duration) (q int64, r Duration, err error) {
	if o.IsZero() {
		return 0, Duration{}, errs.Domainf("division by zero duration")
	}
	dq, dr := floorQuoRem(d.TotalNanoseconds(), o.TotalNanoseconds())
	if !dq.Equal(decimal.NewFromInt(dq.IntPart())) {
		return 0, Duration{}, errs.Overflowf("quotient %s of durations exceeds int64", dq)
	}
	r, err = fromNanos(dr)
	return dq.IntPart(), r, err
}

// Quo returns ⌊d/o⌋.
func (d Duration) Quo(o Duration) (int64, error) {
	q, _, err := d.DivMod(o)
	return q, err
}

// Mod returns d - ⌊d/o⌋*o, which has the sign of o.
func (d Duration) Mod(o Duration) (Duration, error) {
	_, r, err := d.DivMod(o)
	return r, err
}

// String formats d like "-1 day, 23:59:59.000000001". The fraction of a
// second is omitted if it is zero.
func (d Duration) String() string {
	b := make([]byte, 0, 40)
	if d.days != 0 {
		b = strconv.AppendInt(b, d.days, 10)
		if d.days == 1 || d.days == -1 {
			b = append(b, " day, "...)
		} else {
			b = append(b, " days, "...)
		}
	}
	s := d.Seconds()
	b = fmt.Appendf(b, "%d:%02d:%02d", s/3600, s/60%60, s%60)
	if ns := d.Nanoseconds(); ns != 0 {
		b = fmt.Appendf(b, ".%09d", ns)
	}
	return string(b)
}

// GoString implements fmt.GoStringer.
func (d Duration) GoString() string {
	return fmt.Sprintf("calendar.NewDuration(%d, %d)", d.days, d.nsec)
}
