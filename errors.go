// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"gonih.org/calendar/internal/errs"
)

// Errors returned by this module. Returned errors wrap one of them and carry
// a message describing the offending value; test for them with errors.Is.
var (
	// ErrOutOfRange is returned for years, months, Julian days and other
	// fields outside of their supported ranges.
	ErrOutOfRange = errs.OutOfRange
	// ErrInvalidDate is returned for days that do not exist in their month,
	// including days skipped by the calendar reform.
	ErrInvalidDate = errs.InvalidDate
	// ErrDomain is returned for operations which are not defined for their
	// arguments, like ISO week dates of Julian dates.
	ErrDomain = errs.Domain
	// ErrOverflow is returned when a Duration exceeds its range.
	ErrOverflow = errs.Overflow
	// ErrParse is returned when text can not be parsed, in which case the
	// returned error is a *ParseError, and for malformed Strftime formats.
	ErrParse = errs.Parse
)

// ParseError describes a problem parsing a date string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
	// Err is the cause of the failure, if the parsed fields do not form a
	// valid date.
	Err error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("parsing date %q: %s", e.Value, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
	case e.Layout == "":
		return fmt.Sprintf("parsing date %q: cannot parse %q", e.Value, e.ValueElem)
	}
	return fmt.Sprintf("parsing date %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
}

// Unwrap returns the cause of e, if any, and ErrParse.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
