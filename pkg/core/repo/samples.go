// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo lists the repository interfaces which are required by
// the use cases layer. Their implementations live in the adapter layer.
package repo

import (
	"context"

	"github.com/momeni/clean-fmt/pkg/core/model"
)

// Samples provides the ordered records which should be displayed.
// Returned slices belong to the caller and preserve the order in which
// records must be printed.
type Samples interface {
	Cities(ctx context.Context) ([]model.City, error)
	Colors(ctx context.Context) ([]model.Color, error)
}
