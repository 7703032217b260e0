// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"strings"
	"time"
)

// Duration is a specialization of the time.Duration which can be
// read from (and written to) yaml files in its human-readable form,
// e.g., 1m30s, with no zero trailing units.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so
// a yaml scalar can be decoded as a time duration following the
// time.ParseDuration format. Negative durations are rejected.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	if dd < 0 {
		return &negativeDurationError{string(data)}
	}
	*d = Duration(dd)
	return nil
}

// MarshalText implements encoding.TextMarshaler. Zero trailing units
// are dropped, so 1h0m0s is encoded as 1h.
func (d Duration) MarshalText() ([]byte, error) {
	s := time.Duration(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return []byte(s), nil
}

// LogValue implements slog.LogValuer.
func (d Duration) LogValue() slog.Value {
	return slog.DurationValue(time.Duration(d))
}

type negativeDurationError struct {
	s string
}

func (e *negativeDurationError) Error() string {
	return "negative duration: " + e.s
}
