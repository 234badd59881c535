// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar_test

import (
	"fmt"
	"time"

	"gonih.org/calendar"
)

// ExampleOf demonstrates some useful patterns when using Of.
func ExampleOf() {
	// Create a fixed date:
	d := calendar.MustOf(2023, 12, 31)
	fmt.Println(d)

	// Dates are validated, not normalized:
	_, err := calendar.Of(2023, 12, 40)
	fmt.Println(err)

	// Before 1582-10-15, dates are Julian:
	fmt.Println(calendar.MustOf(1582, 10, 4))
	_, err = calendar.Of(1582, 10, 10)
	fmt.Println(err)

	// Get the Date of a time.Time, which is always Gregorian:
	t := time.Date(1000, 1, 10, 13, 24, 42, 0, time.UTC)
	d, _ = calendar.Default().FromGregorian(t.Date())
	fmt.Println(d)

	// Output:
	// G2023-12-31
	// invalid date: day 40 not in [1, 31]
	// J1582-10-04
	// invalid date: 1582-10-10 falls into the calendar reform 1582-10-15
	// J1000-01-05
}

// ExampleDate_Sub demonstrates arithmetic across the reform.
func ExampleDate_Sub() {
	d1, d2 := calendar.MustOf(1582, 10, 4), calendar.MustOf(1582, 10, 15)
	fmt.Println(d2.Sub(d1))

	d3, _ := d2.AddDays(-2)
	fmt.Println(d3)

	// AddDate counts from the first of the month:
	d4, _ := calendar.MustOf(2024, 1, 31).AddDate(0, 1, 0)
	fmt.Println(d4)

	// Output:
	// 1 day, 0:00:00
	// J1582-10-03
	// G2024-03-02
}

// ExampleMixed demonstrates the reform in Great Britain.
func ExampleMixed() {
	gb, err := calendar.Mixed(1752, 9, 14)
	if err != nil {
		panic(err)
	}
	d, _ := gb.Date(1752, 9, 2)
	next, _ := d.AddDays(1)
	fmt.Println(d, next, next.Weekday())

	// The same day under the Default engine:
	fmt.Println(next.In(calendar.Default()))

	// Output:
	// J1752-09-02 G1752-09-14 Thursday
	// G1752-09-14 <nil>
}

// ExampleParse demonstrates the usage of Parse.
func ExampleParse() {
	// Parse date according to RFC3339.
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-05-14"))

	// Parse the same date in E-Mail format.
	fmt.Println(calendar.Parse(calendar.RFC1123, "14 May 2024"))

	// Parse the same date in US date format
	fmt.Println(calendar.Parse("01/02/06", "05/14/24"))

	// Parse validates ranges.
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-13-01"))
	fmt.Println(calendar.Parse(calendar.RFC3339, "2024-02-29"))
	fmt.Println(calendar.Parse(calendar.RFC3339, "2023-02-29"))

	// But it does not validate whether the specified day of the week is
	// correct for the specified date, for compatibility with time.Time.
	d, err := calendar.Parse("Monday 2006-01-02", "Friday 2024-02-25")
	fmt.Println(d, err, d.Weekday())

	// Output:
	// G2024-05-14 <nil>
	// G2024-05-14 <nil>
	// G2024-05-14 <nil>
	// J0000-00-00 parsing date "2024-13-01": month out of range
	// G2024-02-29 <nil>
	// J0000-00-00 parsing date "2023-02-29": invalid date: day 29 not in [1, 28]
	// G2024-02-25 <nil> Sunday
}

// ExampleParseISO demonstrates ISO 8601 calendar and week dates.
func ExampleParseISO() {
	for _, s := range []string{"2025-01-11", "20250111", "2025-W02-6", "-0044-03-15"} {
		d, err := calendar.ParseISO(s)
		if err != nil {
			panic(err)
		}
		w, err := d.ISOWeekFormat()
		fmt.Println(d.ISOFormat(), d.Weekday(), w, err)
	}

	// Output:
	// 2025-01-11 Saturday 2025-W02-6 <nil>
	// 2025-01-11 Saturday 2025-W02-6 <nil>
	// 2025-01-11 Saturday 2025-W02-6 <nil>
	// -0044-03-15 Tuesday  domain error: ISO week date of Julian date -0044-03-15
}

// ExampleDate_Strftime demonstrates C-style formatting.
func ExampleDate_Strftime() {
	s, _ := calendar.MustOf(2025, 1, 11).Strftime("%A, %B %e %Y (day %j, ISO week %V)")
	fmt.Println(s)

	// Output:
	// Saturday, January 11 2025 (day 011, ISO week 02)
}
