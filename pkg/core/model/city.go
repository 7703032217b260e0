// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"log/slog"
)

// City is a named geo-point. It has no identity beyond its field
// values and it is passed around by value.
type City struct {
	Name       string     // a human-readable label, e.g., Dublin
	Coordinate Coordinate // where the city is located
}

// NewCity returns a City with the given name and lat/lon degrees.
func NewCity(name string, lat, lon float64) City {
	return City{Name: name, Coordinate: Coordinate{Lat: lat, Lon: lon}}
}

// String implements the fmt.Stringer interface and renders city as
// "<name>: <|lat|>°<N|S> <|lon|>°<E|W>" with three decimal places.
// It never fails; non-finite values are printed as fmt prints them.
func (city City) String() string {
	return city.Name + ": " + city.Coordinate.String()
}

// GoString implements the fmt.GoStringer interface, so %#v verb shows
// all fields with their full precision.
func (city City) GoString() string {
	return fmt.Sprintf(
		"City { name: %q, lat: %v, lon: %v }",
		city.Name, city.Coordinate.Lat, city.Coordinate.Lon,
	)
}

// Validate checks a city which is supplied externally (e.g., from a
// config file or a REST API request). Name must be non-empty and the
// coordinate must be valid (see Coordinate.Validate).
func (city City) Validate() error {
	if city.Name == "" {
		return &ValidationError{
			Field: "name", Value: city.Name, Err: ErrEmptyName,
		}
	}
	return city.Coordinate.Validate()
}

// LogValue implements slog.LogValuer.
func (city City) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", city.Name),
		slog.Float64("lat", city.Coordinate.Lat),
		slog.Float64("lon", city.Coordinate.Lon),
	)
}
