// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package swatch decorates the rendered color lines with a small block
// which is painted by that color, using lipgloss. Terminals which do
// not support colors (and non-terminal writers) get plain spaces.
package swatch

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/muesli/termenv"
)

// Swatch paints color blocks for the output which is detected by its
// lipgloss renderer.
type Swatch struct {
	r     *lipgloss.Renderer
	width int
}

// New returns a Swatch which detects the color profile of its output
// from the given renderer. Blocks are width cells wide (at least 1).
func New(r *lipgloss.Renderer, width int) *Swatch {
	if width < 1 {
		width = 1
	}
	return &Swatch{r: r, width: width}
}

// TrueColor forces the 24-bit color profile, regardless of what was
// detected, e.g., when the output is piped to a pager which supports
// escape sequences.
func (s *Swatch) TrueColor() *Swatch {
	s.r.SetColorProfile(termenv.TrueColor)
	return s
}

// Decorate appends a space and a painted block to line. It matches
// the displayuc.Decorator signature.
func (s *Swatch) Decorate(c model.Color, line string) string {
	block := s.r.NewStyle().
		Background(lipgloss.Color("#" + c.Hex())).
		Render(strings.Repeat(" ", s.width))
	return line + " " + block
}
