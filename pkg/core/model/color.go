// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
)

// Color is an RGB color which is expressed as three 8-bit channels.
// The uint8 width guarantees the 0-255 range by construction, so
// a Color value needs no validation. Values which are obtained from
// wider integer types should be converted using NewColor.
type Color struct {
	Red, Green, Blue uint8
}

// NewColor converts r, g, and b integers to a Color. If any channel
// falls out of the 0-255 range, a *ValidationError is returned which
// names the first offending channel.
func NewColor(r, g, b int) (Color, error) {
	for _, ch := range [...]struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < 0 || ch.value > 255 {
			return Color{}, &ValidationError{
				Field:  ch.name,
				Value:  ch.value,
				Reason: "must be in [0, 255]",
			}
		}
	}
	return Color{Red: uint8(r), Green: uint8(g), Blue: uint8(b)}, nil
}

// ParseHex parses a six digits hexadecimal color, optionally prefixed
// by "0x", "0X", or "#". Both upper and lower case digits are accepted.
// It is the inverse of the Hex method. Malformed strings cause a
// *ValidationError wrapping ErrInvalidHex.
func ParseHex(s string) (Color, error) {
	digits := s
	for _, prefix := range []string{"0x", "0X", "#"} {
		if strings.HasPrefix(digits, prefix) {
			digits = digits[len(prefix):]
			break
		}
	}
	if len(digits) != 6 {
		return Color{}, &ValidationError{
			Field: "hex", Value: s, Err: ErrInvalidHex,
		}
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, &ValidationError{
			Field: "hex", Value: s, Err: ErrInvalidHex,
		}
	}
	return Color{Red: b[0], Green: b[1], Blue: b[2]}, nil
}

// Hex returns the RRGGBB representation of c, each channel is encoded
// as exactly two uppercase hexadecimal digits (zero-padded).
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// String implements the fmt.Stringer interface and renders c as
// "RGB (<red>, <green>, <blue>) 0x<RRGGBB>".
func (c Color) String() string {
	return fmt.Sprintf(
		"RGB (%d, %d, %d) 0x%s", c.Red, c.Green, c.Blue, c.Hex(),
	)
}

// GoString implements the fmt.GoStringer interface for the %#v verb.
func (c Color) GoString() string {
	return fmt.Sprintf(
		"Color { red: %d, green: %d, blue: %d }", c.Red, c.Green, c.Blue,
	)
}

// LogValue implements slog.LogValuer.
func (c Color) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("red", int(c.Red)),
		slog.Int("green", int(c.Green)),
		slog.Int("blue", int(c.Blue)),
	)
}
