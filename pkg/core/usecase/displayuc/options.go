// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package displayuc

import (
	"errors"
	"fmt"
)

// Format specifies how each rendered line is written.
type Format int

// Valid values for the Format enum.
const (
	FormatInvalid Format = iota // zero value is invalid

	FormatText // the rendered text, one per line
	FormatJSON // a {"kind","text"} json object per line
)

// ErrUnknownFormat indicates that a string may not be parsed as
// a known output format.
var ErrUnknownFormat = errors.New("unknown output format")

// String returns text or json. Invalid formats cause a panic.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		panic(fmt.Sprintf("invalid format: %d", int(f)))
	}
}

// ParseFormat parses text or json. An empty string is taken as text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatInvalid, ErrUnknownFormat
	}
}

// Option is a functional option for the display use case.
type Option func(uc *UseCase) error

// WithFormat option configures the output format of a UseCase.
func WithFormat(f Format) Option {
	return func(uc *UseCase) error {
		if f != FormatText && f != FormatJSON {
			return fmt.Errorf("format (%d) is not valid", int(f))
		}
		if uc.format != FormatInvalid {
			return errors.New("format is already configured")
		}
		uc.format = f
		return nil
	}
}

// WithDecorator option asks a UseCase to pass each rendered color line
// through d before writing it.
func WithDecorator(d Decorator) Option {
	return func(uc *UseCase) error {
		if d == nil {
			return errors.New("decorator is nil")
		}
		if uc.decorator != nil {
			return errors.New("decorator is already configured")
		}
		uc.decorator = d
		return nil
	}
}
