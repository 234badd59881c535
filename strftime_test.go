// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestStrftime(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		d      Date
		format string
		want   string
	}{
		{MustOf(2025, 1, 11), "%A %a %w %u", "Saturday Sat 6 6"},
		{MustOf(2025, 1, 11), "%d|%e|%B|%b|%m", "11|11|January|Jan|01"},
		{MustOf(2025, 1, 5), "%d|%e", "05| 5"},
		{MustOf(2025, 1, 11), "%Y %y %C %j", "2025 25 20 011"},
		{MustOf(2025, 1, 11), "%F", "2025-01-11"},
		{MustOf(2025, 1, 11), "%G-W%V-%u", "2025-W02-6"},
		{MustOf(2025, 1, 11), "%U %W", "01 01"},
		{MustOf(2025, 1, 1), "%U %W", "00 00"},
		{MustOf(2025, 1, 5), "%U %W", "01 00"},
		{MustOf(2025, 1, 6), "%U %W", "01 01"},
		{MustOf(2025, 12, 31), "%j %U %W", "365 52 52"},
		{MustOf(2003, 12, 29), "%G %V", "2004 01"},
		{MustOf(2010, 1, 3), "%G %V", "2009 53"},
		{MustOf(1582, 10, 15), "%j %a", "278 Fri"},
		{MustOf(1582, 10, 4), "%F %A %j", "1582-10-04 Thursday 277"},
		{MustOf(-44, 3, 15), "%Y|%y|%C", "-0044|56|-1"},
		{MustOf(2025, 1, 11), "100%%", "100%"},
		{MustOf(2025, 1, 11), "", ""},
	}
	for _, tc := range tcs {
		got, err := tc.d.Strftime(tc.format)
		if err != nil || got != tc.want {
			t.Errorf("%v.Strftime(%q) = %q, %v, want %q, <nil>", tc.d, tc.format, got, err, tc.want)
		}
	}
}

func TestStrftimeErrors(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		d      Date
		format string
		want   error
	}{
		{MustOf(2025, 1, 11), "%Q", ErrParse},
		{MustOf(2025, 1, 11), "%Y%", ErrParse},
		{MustOf(1582, 10, 4), "%G", ErrDomain},
		{MustOf(1000, 1, 1), "%V", ErrDomain},
	}
	for _, tc := range tcs {
		if got, err := tc.d.Strftime(tc.format); !errors.Is(err, tc.want) {
			t.Errorf("%v.Strftime(%q) = %q, %v, want %v", tc.d, tc.format, got, err, tc.want)
		}
	}
}

// TestStrftimeCompat compares the week numbers with those of package time
// for a range of Gregorian dates.
func TestStrftimeCompat(t *testing.T) {
	t.Parallel()
	start := MustOf(1990, 1, 1)
	for i := 0; i < 20*366; i++ {
		d, err := start.AddDays(i)
		if err != nil {
			t.Fatal(err)
		}
		tm := d.Time(0, 0, 0, 0, time.UTC)
		y, w := tm.ISOWeek()
		got, err := d.Strftime("%G %V %j %a")
		if want := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006") + " " + twoDigits(w) + " " + tm.Format("002 Mon"); err != nil || got != want {
			t.Fatalf("%v.Strftime = %q, %v, want %q", d, got, err, want)
		}
		if got, want := d.Format("Monday January 2 2006"), tm.Format("Monday January 2 2006"); got != want {
			t.Fatalf("%v.Format = %q, want %q", d, got, want)
		}
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
