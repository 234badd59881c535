// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs holds the error taxonomy shared by all packages of the module.
// The sentinels are re-exported by the public packages; callers match on them
// with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	OutOfRange  = errors.New("out of range")
	InvalidDate = errors.New("invalid date")
	Domain      = errors.New("domain error")
	Overflow    = errors.New("overflow")
	Parse       = errors.New("parse error")
)

// OutOfRangef returns an error wrapping OutOfRange.
func OutOfRangef(format string, args ...any) error {
	return wrap(OutOfRange, format, args)
}

// InvalidDatef returns an error wrapping InvalidDate.
func InvalidDatef(format string, args ...any) error {
	return wrap(InvalidDate, format, args)
}

// Domainf returns an error wrapping Domain.
func Domainf(format string, args ...any) error {
	return wrap(Domain, format, args)
}

// Overflowf returns an error wrapping Overflow.
func Overflowf(format string, args ...any) error {
	return wrap(Overflow, format, args)
}

// Parsef returns an error wrapping Parse.
func Parsef(format string, args ...any) error {
	return wrap(Parse, format, args)
}

func wrap(sentinel error, format string, args []any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
