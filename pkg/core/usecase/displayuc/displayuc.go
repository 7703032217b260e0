// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package displayuc contains the display UseCase which renders the
// sample records and emits one line per record. Cities are printed
// first and colors afterwards, each group in its repository order.
package displayuc

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/momeni/clean-fmt/pkg/core/log"
	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/momeni/clean-fmt/pkg/core/repo"
)

// Decorator may append extra (e.g., terminal styling) text to the
// rendered line of a color. It is applied in the text format only.
type Decorator func(c model.Color, line string) string

// UseCase represents the display use case. It holds the output writer,
// the samples repository, and the optional presentation settings.
type UseCase struct {
	w       io.Writer
	samples repo.Samples

	format    Format
	decorator Decorator
}

// New instantiates a display use case which writes into w and reads
// its records from s. Optional parameters are passed as a series of
// functional options. Without options, lines are written as plain text.
func New(w io.Writer, s repo.Samples, opts ...Option) (*UseCase, error) {
	uc := &UseCase{w: w, samples: s}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.format == FormatInvalid {
		uc.format = FormatText
	}
	return uc, nil
}

// Render returns the canonical text of d. It is a pure function and
// cannot fail.
func (uc *UseCase) Render(d model.Displayer) string {
	return d.String()
}

// Lines renders all sample records in their printing order, without
// any decoration, and returns them.
func (uc *UseCase) Lines(ctx context.Context) ([]string, error) {
	var lines []string
	err := uc.each(ctx, func(kind string, d model.Displayer) error {
		lines = append(lines, uc.Render(d))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Run fetches the sample cities and colors and writes one line for
// each of them, in order. Only the repository and the writer may
// cause an error. A cancelled ctx stops the run between two lines.
func (uc *UseCase) Run(ctx context.Context) error {
	return uc.each(ctx, func(kind string, d model.Displayer) error {
		return uc.emit(ctx, kind, d)
	})
}

func (uc *UseCase) each(
	ctx context.Context, f func(kind string, d model.Displayer) error,
) error {
	cities, err := uc.samples.Cities(ctx)
	if err != nil {
		return fmt.Errorf("fetching cities: %w", err)
	}
	colors, err := uc.samples.Colors(ctx)
	if err != nil {
		return fmt.Errorf("fetching colors: %w", err)
	}
	for i, city := range cities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f("city", city); err != nil {
			return fmt.Errorf("city #%d: %w", i, err)
		}
	}
	for i, c := range colors {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f("color", c); err != nil {
			return fmt.Errorf("color #%d: %w", i, err)
		}
	}
	return nil
}

type jsonLine struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (uc *UseCase) emit(
	ctx context.Context, kind string, d model.Displayer,
) error {
	line := uc.Render(d)
	log.Debug(ctx, "rendered", log.Stringer(kind, d))
	switch uc.format {
	case FormatJSON:
		b, err := json.Marshal(jsonLine{Kind: kind, Text: line})
		if err != nil {
			return fmt.Errorf("encoding json line: %w", err)
		}
		line = string(b)
	default:
		if c, ok := d.(model.Color); ok && uc.decorator != nil {
			line = uc.decorator(c, line)
		}
	}
	if _, err := io.WriteString(uc.w, line+"\n"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
