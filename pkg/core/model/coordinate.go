// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"math"
)

// Coordinate represents a geographical location with a latitude and
// longitude, both in signed degrees. Positive latitudes are in the
// northern hemisphere and positive longitudes are in the eastern one.
type Coordinate struct {
	Lat, Lon float64 // latitude and longitude of the geo-location
}

// Hemispheres returns the north/south and east/west letters for the
// c coordinate. Zero (including the negative zero) counts as N and E.
func (c Coordinate) Hemispheres() (ns, ew rune) {
	ns, ew = 'N', 'E'
	if c.Lat < 0 {
		ns = 'S'
	}
	if c.Lon < 0 {
		ew = 'W'
	}
	return
}

// String renders c as two absolute degree values with three decimal
// places, each one followed by its hemisphere letter, e.g.,
// "53.348°N 6.260°W".
func (c Coordinate) String() string {
	ns, ew := c.Hemispheres()
	return fmt.Sprintf(
		"%.3f°%c %.3f°%c", math.Abs(c.Lat), ns, math.Abs(c.Lon), ew,
	)
}

// Validate returns nil if both components of c are finite and within
// their valid ranges. A NaN or infinite component is reported as a
// *FormatError, while a finite but out of range component is reported
// as a *ValidationError.
func (c Coordinate) Validate() error {
	if err := checkFinite("lat", c.Lat); err != nil {
		return err
	}
	if err := checkFinite("lon", c.Lon); err != nil {
		return err
	}
	if c.Lat < -90 || c.Lat > 90 {
		return &ValidationError{
			Field: "lat", Value: c.Lat, Reason: "must be in [-90, 90]",
		}
	}
	if c.Lon < -180 || c.Lon > 180 {
		return &ValidationError{
			Field: "lon", Value: c.Lon, Reason: "must be in [-180, 180]",
		}
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FormatError{Field: field, Value: v}
	}
	return nil
}
