// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates that a city was given with no name.
var ErrEmptyName = errors.New("name is empty")

// ErrInvalidHex indicates that a string may not be parsed as a six
// digits hexadecimal color. Caller knows the string itself, so it is
// not included in this error (but the wrapping ValidationError has it).
var ErrInvalidHex = errors.New("not a six digits hex color")

// ValidationError indicates that an externally supplied value was not
// acceptable, e.g., a color channel out of the 0-255 range or a
// latitude beyond the poles. Either Reason or Err describes the issue.
// Values which are hard-coded in this package never cause it.
type ValidationError struct {
	Field  string // name of the offending field, e.g., green
	Value  any    // the rejected value
	Reason string // a short description, if Err is nil
	Err    error  // the wrapped cause, if any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	reason := e.Reason
	if e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, reason)
}

// Unwrap returns the wrapped cause, so errors.Is(err, ErrInvalidHex)
// works through a *ValidationError.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError indicates a floating-point value which has no textual
// degrees representation, namely NaN and the infinities.
type FormatError struct {
	Field string
	Value float64
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrepresentable %s: %v", e.Field, e.Value)
}
