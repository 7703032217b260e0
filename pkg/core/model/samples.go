// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// SampleCities returns the fixed list of sample cities, in their
// printing order. A fresh slice is returned on each call.
func SampleCities() []City {
	return []City{
		NewCity("Dublin", 53.347778, -6.259722),
		NewCity("Oslo", 59.95, 10.75),
		NewCity("Vancouver", 49.25, -123.1),
	}
}

// SampleColors returns the fixed list of sample colors, in their
// printing order. A fresh slice is returned on each call.
func SampleColors() []Color {
	return []Color{
		{Red: 128, Green: 255, Blue: 90},
		{Red: 0, Green: 3, Blue: 254},
		{Red: 0, Green: 0, Blue: 0},
	}
}
