// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/carlosjhr64/jd"
)

var tcs = []struct {
	year  int
	month time.Month
	day   int
	want  int // JD, if valid
	err   error
}{
	{2000, 1, 1, 2451545, nil},
	{2025, 1, 11, 2460687, nil},
	{2025, 1, 12, 2460688, nil},
	{1858, 11, 17, MJD0, nil},
	{1582, 10, 4, 2299160, nil},
	{1582, 10, 15, 2299161, nil},
	{1582, 10, 5, 0, ErrInvalidDate},
	{1582, 10, 14, 0, ErrInvalidDate},
	{-4712, 1, 1, 0, nil},
	{-4713, 12, 31, 0, ErrOutOfRange},
	{9999, 12, 31, 5373484, nil},
	{10000, 1, 1, 0, ErrOutOfRange},
	{1500, 2, 29, 2268992, nil},
	{1900, 2, 29, 0, ErrInvalidDate},
	{2000, 2, 29, 2451604, nil},
	{2023, 2, 29, 0, ErrInvalidDate},
	{2023, 0, 1, 0, ErrOutOfRange},
	{2023, 13, 1, 0, ErrOutOfRange},
	{2023, 4, 31, 0, ErrInvalidDate},
	{2023, 4, 0, 0, ErrInvalidDate},
	{1957, 10, 4, 2436116, nil},
	{333, 1, 27, 1842713, nil},
	{-1000, 2, 29, 1355867, nil},
}

func TestOf(t *testing.T) {
	for i, tc := range tcs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			d, err := Of(tc.year, tc.month, tc.day)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("Of(%d, %d, %d) = %v, %v, want error wrapping %v", tc.year, tc.month, tc.day, d, err, tc.err)
				}
				return
			}
			if err != nil || d.JD() != tc.want {
				t.Fatalf("Of(%d, %d, %d).JD() = %d, %v, want %d, <nil>", tc.year, tc.month, tc.day, d.JD(), err, tc.want)
			}
			if d.MJD() != tc.want-MJD0 {
				t.Errorf("Of(%d, %d, %d).MJD() = %d, want %d", tc.year, tc.month, tc.day, d.MJD(), tc.want-MJD0)
			}
			if y, m, day := d.Date(); y != tc.year || m != tc.month || day != tc.day {
				t.Errorf("Of(%d, %d, %d).Date() = %d, %d, %d", tc.year, tc.month, tc.day, y, m, day)
			}
			got, err := FromJD(tc.want)
			if err != nil || got != d {
				t.Errorf("FromJD(%d) = %v, %v, want %v, <nil>", tc.want, got, err, d)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	if got := MustOf(2025, 1, 11).Weekday(); got != time.Saturday {
		t.Errorf("2025-01-11 is a %v, want Saturday", got)
	}
	if got := MustOf(2025, 1, 12).Weekday(); got != time.Sunday {
		t.Errorf("2025-01-12 is a %v, want Sunday", got)
	}
	if got := MustOf(2025, 1, 12).ISOWeekday(); got != 7 {
		t.Errorf("ISOWeekday of 2025-01-12 = %d, want 7", got)
	}
	// The weekdays continue across the reform.
	if a, b := MustOf(1582, 10, 4).Weekday(), MustOf(1582, 10, 15).Weekday(); a != time.Thursday || b != time.Friday {
		t.Errorf("1582-10-04 is a %v and 1582-10-15 a %v, want Thursday and Friday", a, b)
	}
}

func TestToday(t *testing.T) {
	if got, want := Today(time.UTC), gregorianDefault(time.Now().UTC().Date()); got != want {
		t.Errorf("Today(time.UTC) = %v, want %v", got, want)
	}
	if got, want := Today(time.Local), gregorianDefault(time.Now().Date()); got != want {
		t.Errorf("Today(time.Local) = %v, want %v", got, want)
	}
	if got, want := Today(nil), gregorianDefault(time.Now().Date()); got != want {
		t.Errorf("Today(nil) = %v, want %v", got, want)
	}
	if got, want := PureJulian().Today(nil), PureJulian().Today(time.Local); got != want {
		t.Errorf("PureJulian().Today(nil) = %v, want %v", got, want)
	}
}

func gregorianDefault(year int, month time.Month, day int) Date {
	d, err := Default().FromGregorian(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

func TestArithmetic(t *testing.T) {
	d := MustOf(1582, 10, 4)
	next, err := d.AddDays(1)
	if err != nil || next != MustOf(1582, 10, 15) {
		t.Errorf("%v.AddDays(1) = %v, %v, want G1582-10-15", d, next, err)
	}
	if got := next.Sub(d); got != (Duration{days: 1}) {
		t.Errorf("%v.Sub(%v) = %v, want 1 day", next, d, got)
	}
	week, _ := Days(7)
	if got, err := next.Add(week); err != nil || got != MustOf(1582, 10, 22) {
		t.Errorf("%v.Add(%v) = %v, %v, want G1582-10-22", next, week, got, err)
	}
	if got, err := next.SubDuration(week); err != nil || got != MustOf(1582, 9, 28) {
		t.Errorf("%v.SubDuration(%v) = %v, %v, want J1582-09-28", next, week, got, err)
	}
	if _, err := next.Add(Resolution); !errors.Is(err, ErrDomain) {
		t.Errorf("%v.Add(%v) = _, %v, want %v", next, Resolution, err, ErrDomain)
	}
	if _, err := MustOf(9999, 12, 31).AddDays(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("9999-12-31 + 1 day: err = %v, want %v", err, ErrOutOfRange)
	}
	if _, err := MustOf(-4712, 1, 1).AddDays(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("-4712-01-01 - 1 day: err = %v, want %v", err, ErrOutOfRange)
	}
	if _, err := d.AddDays(1 << 62); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%v.AddDays(1<<62): err = %v, want %v", d, err, ErrOutOfRange)
	}
}

func TestAddDate(t *testing.T) {
	tcs := []struct {
		d                  Date
		years, months, day int
		want               Date
	}{
		{MustOf(2011, 1, 1), -1, 2, 3, MustOf(2010, 3, 4)},
		{MustOf(2023, 10, 31), 0, 1, 0, MustOf(2023, 12, 1)},
		{MustOf(2024, 2, 29), 1, 0, 0, MustOf(2025, 3, 1)},
		{MustOf(2023, 12, 15), 0, 1, 0, MustOf(2024, 1, 15)},
		{MustOf(2023, 1, 15), 0, -13, 0, MustOf(2021, 12, 15)},
		{MustOf(1582, 9, 10), 0, 1, 0, MustOf(1582, 10, 20)},
		{MustOf(1582, 10, 1), 0, 0, 4, MustOf(1582, 10, 15)},
		{MustOf(1500, 2, 29), 100, 0, 0, MustOf(1600, 2, 29)},
	}
	for _, tc := range tcs {
		got, err := tc.d.AddDate(tc.years, tc.months, tc.day)
		if err != nil || got != tc.want {
			t.Errorf("%v.AddDate(%d, %d, %d) = %v, %v, want %v, <nil>", tc.d, tc.years, tc.months, tc.day, got, err, tc.want)
		}
	}
	if _, err := MustOf(9999, 12, 1).AddDate(0, 1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("9999-12-01 + 1 month: err = %v, want %v", err, ErrOutOfRange)
	}
}

func TestCompare(t *testing.T) {
	a := MustOf(1582, 10, 4)
	b, err := a.In(PureGregorian())
	if err != nil {
		t.Fatal(err)
	}
	if y, m, d := b.Date(); y != 1582 || m != 10 || d != 14 {
		t.Errorf("%v.In(PureGregorian()) = %v, want G1582-10-14", a, b)
	}
	if a == b || !a.Equal(b) || a.Compare(b) != 0 {
		t.Errorf("%v and %v: == is %v, Equal is %v, Compare is %d", a, b, a == b, a.Equal(b), a.Compare(b))
	}
	c := MustOf(1582, 10, 15)
	if !a.Before(c) || !c.After(b) || c.Compare(a) != 1 || a.Compare(c) != -1 {
		t.Errorf("%v is not ordered before %v", a, c)
	}
}

func TestWith(t *testing.T) {
	d := MustOf(2024, 2, 29)
	if _, err := d.WithYear(2023); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("%v.WithYear(2023): err = %v, want %v", d, err, ErrInvalidDate)
	}
	if got, err := d.WithYear(2028); err != nil || got != MustOf(2028, 2, 29) {
		t.Errorf("%v.WithYear(2028) = %v, %v", d, got, err)
	}
	if got, err := d.WithMonth(3); err != nil || got != MustOf(2024, 3, 29) {
		t.Errorf("%v.WithMonth(3) = %v, %v", d, got, err)
	}
	if _, err := MustOf(1582, 10, 1).WithDay(10); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("1582-10-01.WithDay(10): err = %v, want %v", err, ErrInvalidDate)
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		d    Date
		want string
	}{
		{MustOf(1582, 10, 4), "J1582-10-04"},
		{MustOf(1582, 10, 15), "G1582-10-15"},
		{MustOf(-44, 3, 15), "J-0044-03-15"},
		{gregorian(-44, 3, 15), "G-0044-03-15"},
	} {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.d, got, tc.want)
		}
	}
	if got, want := MustOf(2023, 1, 2).GoString(), "calendar.MustOf(2023, 1, 2)"; got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestConvert(t *testing.T) {
	d := MustOf(1582, 10, 4)
	if y, m, day := d.Gregorian(); y != 1582 || m != 10 || day != 14 {
		t.Errorf("%v.Gregorian() = %d, %d, %d, want 1582, 10, 14", d, y, m, day)
	}
	d = MustOf(2000, 1, 1)
	if y, m, day := d.Julian(); y != 1999 || m != 12 || day != 19 {
		t.Errorf("%v.Julian() = %d, %d, %d, want 1999, 12, 19", d, y, m, day)
	}
	if got, want := d.Time(12, 0, 0, 0, time.UTC), time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("%v.Time(12, 0, 0, 0, UTC) = %v, want %v", d, got, want)
	}
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, int(tc.month), tc.day)
	}
}

func FuzzOf(f *testing.F) {
	addAll(f)
	f.Fuzz(check)
}

func FuzzMarshalText(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := Of(year, time.Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalText()
		t.Logf("Of(%d, %d, %d).MarshalText() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		d, err := FromJD(rnd.Intn(maxJDN))
		if err != nil {
			continue
		}
		b, err := d.MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic.
		d.UnmarshalText(b)
	})
}

func FuzzMarshalBinary(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want, err := Of(year, time.Month(month), day)
		if err != nil {
			return
		}
		b, _ := want.MarshalBinary()
		t.Logf("Of(%d, %d, %d).MarshalBinary() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalBinary(b); err != nil {
			t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		d, err := FromJD(rnd.Intn(maxJDN))
		if err != nil {
			continue
		}
		b, err := d.MarshalBinary()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

func TestUnmarshalEngine(t *testing.T) {
	d, err := PureJulian().Date(2000, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := d.MarshalBinary()
	got, _ := PureJulian().Date(1, 1, 1)
	if err := got.UnmarshalBinary(b); err != nil || got != d {
		t.Errorf("UnmarshalBinary into a Julian date = %v, %v, want %v", got, err, d)
	}
	var def Date
	if err := def.UnmarshalBinary(b); err != nil || def != MustOf(2000, 1, 14) {
		t.Errorf("UnmarshalBinary into the zero Date = %v, %v, want G2000-01-14", def, err)
	}
	if err := def.UnmarshalBinary(append(b, 0)); err == nil {
		t.Errorf("UnmarshalBinary with trailing data succeeded")
	}
	if err := def.UnmarshalText([]byte("1582-10-10")); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("UnmarshalText(1582-10-10) = %v, want %v", err, ErrInvalidDate)
	}
}

// check that the given year, month and day values produce the same date
// calculations in the proleptic Gregorian calendar as time.Time and package
// jd.
func check(t *testing.T, year, month, day int) {
	d, err := PureGregorian().Date(year, time.Month(month), day)
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		if err == nil {
			t.Errorf("Date(%d, %d, %d) = %v, want error", year, month, day, d)
		}
		return
	}
	if wy, wm, wd := want.Date(); wy != year || int(wm) != month || wd != day {
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Date(%d, %d, %d) = %v, %v, want %v", year, month, day, d, err, ErrInvalidDate)
		}
		return
	}
	if err != nil {
		t.Fatalf("Date(%d, %d, %d) = _, %v, want <nil>", year, month, day, err)
	}
	if got := d.Time(6, 0, 0, 0, time.UTC); got != want {
		t.Errorf("Date(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	if year > 0 {
		if got, want := d.JD(), jd.YMD2J(year, month, day); got != want {
			t.Errorf("Date(%d, %d, %d).JD() = %d, jd.YMD2J = %d", year, month, day, got, want)
		}
	}
	if gotYD, wantYD := d.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("Date(%d, %d, %d).YearDay() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Date(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	iso, err := d.ISOCalendar()
	wantIY, wantIW := want.ISOWeek()
	if err != nil || iso.Year != wantIY || iso.Week != wantIW {
		t.Errorf("Date(%d, %d, %d).ISOCalendar() = %v, %v, want (%d, %d)", year, month, day, iso, err, wantIY, wantIW)
	}
	back, err := PureGregorian().FromJD(d.JD())
	if err != nil || back != d {
		t.Errorf("FromJD(%d) = %v, %v, want %v", d.JD(), back, err, d)
	}
}
