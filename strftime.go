// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"

	"gonih.org/calendar/internal/errs"
	"gonih.org/calendar/internal/proleptic"
)

// Strftime formats d according to a C-style format string. The supported
// conversions are
//
//	%a  abbreviated weekday name        %A  full weekday name
//	%b  abbreviated month name          %B  full month name
//	%d  day of the month, 01-31         %e  day of the month, space padded
//	%m  month, 01-12                    %j  day of the year, 001-366
//	%y  year without century, 00-99     %Y  year, at least four digits
//	%C  century, 00-99                  %F  equivalent to %Y-%m-%d
//	%w  weekday, 0 (Sunday) to 6        %u  ISO weekday, 1 (Monday) to 7
//	%U  week of the year, Sunday first  %W  week of the year, Monday first
//	%G  ISO week-based year             %V  ISO week number, 01-53
//	%%  a literal '%'
//
// %U and %W number the days before the first Sunday (Monday) of the year
// as week 00. The day of the year counts the days that exist under the
// engine of d.
//
// Other conversions return an error wrapping ErrParse. %G and %V return an
// error wrapping ErrDomain for Julian dates.
func (d Date) Strftime(format string) (string, error) {
	b, err := d.AppendStrftime(make([]byte, 0, len(format)+16), format)
	return string(b), err
}

// AppendStrftime is like Strftime but appends the textual representation to
// b and returns the extended buffer.
func (d Date) AppendStrftime(b []byte, format string) ([]byte, error) {
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b = append(b, c)
			continue
		}
		i++
		if i == len(format) {
			return b, errs.Parsef("format %q ends in a lone %%", format)
		}
		switch c = format[i]; c {
		case 'a':
			b = append(b, shortDayNames[d.Weekday()]...)
		case 'A':
			b = append(b, longDayNames[d.Weekday()]...)
		case 'b':
			b = append(b, monthName(shortMonthNames, d.month)...)
		case 'B':
			b = append(b, monthName(longMonthNames, d.month)...)
		case 'd':
			b = appendInt(b, d.day, 2, '0')
		case 'e':
			b = appendInt(b, d.day, 2, ' ')
		case 'm':
			b = appendInt(b, int(d.month), 2, '0')
		case 'j':
			b = appendInt(b, d.YearDay(), 3, '0')
		case 'y':
			b = appendInt(b, proleptic.FloorMod(d.year, 100), 2, '0')
		case 'Y':
			b = appendYear(b, d.year)
		case 'C':
			b = appendInt(b, proleptic.FloorDiv(d.year, 100), 2, '0')
		case 'F':
			b = append(b, d.ISOFormat()...)
		case 'w':
			b = strconv.AppendInt(b, int64(d.Weekday()), 10)
		case 'u':
			b = strconv.AppendInt(b, int64(d.ISOWeekday()), 10)
		case 'U':
			wd := int(d.Weekday())
			b = appendInt(b, (d.YearDay()-1+7-wd)/7, 2, '0')
		case 'W':
			wd := (int(d.Weekday()) + 6) % 7
			b = appendInt(b, (d.YearDay()-1+7-wd)/7, 2, '0')
		case 'G', 'V':
			w, err := d.ISOCalendar()
			if err != nil {
				return b, err
			}
			if c == 'G' {
				b = appendYear(b, w.Year)
			} else {
				b = appendInt(b, w.Week, 2, '0')
			}
		case '%':
			b = append(b, '%')
		default:
			return b, errs.Parsef("format %q: unknown conversion %%%c", format, c)
		}
	}
	return b, nil
}

// appendInt appends a non-negative v, padded to width with pad. Negative
// values are appended with a sign and no padding.
func appendInt(b []byte, v, width int, pad byte) []byte {
	if v < 0 {
		return strconv.AppendInt(b, int64(v), 10)
	}
	for n, p := 1, 10; n < width; n, p = n+1, p*10 {
		if v < p {
			b = append(b, pad)
		}
	}
	return strconv.AppendInt(b, int64(v), 10)
}
