// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fixedrp implements the repo.Samples with the hard-coded
// model samples. It never fails.
package fixedrp

import (
	"context"

	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/momeni/clean-fmt/pkg/core/repo"
)

type samples struct{}

// New returns the fixed samples repository.
func New() repo.Samples {
	return samples{}
}

func (samples) Cities(context.Context) ([]model.City, error) {
	return model.SampleCities(), nil
}

func (samples) Colors(context.Context) ([]model.Color, error) {
	return model.SampleColors(), nil
}
