// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eop provides the Earth orientation corrections needed to convert
// between civil and atomic time scales: the offset TAI-UTC from a table of
// leap seconds and the offset UT1-UTC (DUT1) from a table of daily values.
//
// The tables are data, not functions of the date. They may be stale, and a
// lookup outside of a table logs a warning and yields 0, so callers can
// continue with reduced accuracy.
package eop

import (
	"cmp"
	"sort"

	"gonih.org/calendar/internal/errs"
)

// Errors returned by this package. They are the same values as the
// corresponding errors of package calendar.
var (
	ErrOutOfRange  = errs.OutOfRange
	ErrInvalidDate = errs.InvalidDate
	ErrDomain      = errs.Domain
)

// Bisect returns the index of the last element of the sorted list which is
// less than or equal to x. ok is false, if there is no such element.
func Bisect[S ~[]E, E cmp.Ordered](list S, x E) (i int, ok bool) {
	i = sort.Search(len(list), func(i int) bool { return list[i] > x })
	if i == 0 {
		return 0, false
	}
	return i - 1, true
}
