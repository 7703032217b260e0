// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"

	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/momeni/clean-fmt/pkg/core/repo"
)

// Samples lists the records which should be displayed. If both lists
// are empty, the built-in model samples are used instead.
type Samples struct {
	Cities []City  `yaml:",omitempty"`
	Colors []Color `yaml:",omitempty" validate:"dive"`

	cities []model.City
	colors []model.Color
}

// City is the yaml representation of a model.City.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

// Color is the yaml representation of a model.Color. It may be given
// either by all of its red, green, and blue channels or by its hex
// string, but not both. Channels are pointers, so an explicit zero
// can be told apart from a missing channel.
type Color struct {
	Red   *int   `yaml:",omitempty" validate:"omitempty,gte=0,lte=255"`
	Green *int   `yaml:",omitempty" validate:"omitempty,gte=0,lte=255"`
	Blue  *int   `yaml:",omitempty" validate:"omitempty,gte=0,lte=255"`
	Hex   string `yaml:",omitempty"`
}

func (c Color) model() (model.Color, error) {
	if c.Hex != "" {
		if c.Red != nil || c.Green != nil || c.Blue != nil {
			return model.Color{}, &model.ValidationError{
				Field:  "hex",
				Value:  c.Hex,
				Reason: "excludes red, green, and blue",
			}
		}
		return model.ParseHex(c.Hex)
	}
	for _, ch := range [...]struct {
		name  string
		value *int
	}{{"red", c.Red}, {"green", c.Green}, {"blue", c.Blue}} {
		if ch.value == nil {
			return model.Color{}, &model.ValidationError{
				Field: ch.name, Value: nil, Reason: "is required",
			}
		}
	}
	return model.NewColor(*c.Red, *c.Green, *c.Blue)
}

var _ repo.Samples = (*Config)(nil)

// normalize converts the yaml records to their models, so they can be
// validated by the model layer itself. It must be called after the
// validator has accepted the color channels.
func (s *Samples) normalize() error {
	s.cities = make([]model.City, 0, len(s.Cities))
	for i, c := range s.Cities {
		city := model.NewCity(c.Name, c.Lat, c.Lon)
		if err := city.Validate(); err != nil {
			return fmt.Errorf("cities[%d]: %w", i, err)
		}
		s.cities = append(s.cities, city)
	}
	s.colors = make([]model.Color, 0, len(s.Colors))
	for i, c := range s.Colors {
		mc, err := c.model()
		if err != nil {
			return fmt.Errorf("colors[%d]: %w", i, err)
		}
		s.colors = append(s.colors, mc)
	}
	return nil
}

func (s *Samples) builtin() bool {
	return len(s.Cities) == 0 && len(s.Colors) == 0
}

// Cities returns the configured cities, or the built-in sample cities
// if no sample was configured at all.
func (c *Config) Cities(context.Context) ([]model.City, error) {
	if c.Samples.builtin() {
		return model.SampleCities(), nil
	}
	return append([]model.City(nil), c.Samples.cities...), nil
}

// Colors returns the configured colors, or the built-in sample colors
// if no sample was configured at all.
func (c *Config) Colors(context.Context) ([]model.Color, error) {
	if c.Samples.builtin() {
		return model.SampleColors(), nil
	}
	return append([]model.Color(nil), c.Samples.colors...), nil
}
