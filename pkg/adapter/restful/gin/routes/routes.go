// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of the repository, use case, and
// resource packages based on the user provided configuration settings.
package routes

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-fmt/pkg/adapter/config"
	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin/displayrs"
	"github.com/momeni/clean-fmt/pkg/core/usecase/displayuc"
)

// Register instantiates the display use case, reading its samples from
// the c Config instance, and registers its resource as request handlers
// using the e gin-gonic engine instance under the /api/cafmt/v1 prefix.
// Presentation settings (such as swatches) are not used by the REST
// API since it never writes lines itself.
func Register(e *gin.Engine, c *config.Config) error {
	uc, err := displayuc.New(io.Discard, c)
	if err != nil {
		return fmt.Errorf("creating display use case: %w", err)
	}
	r := e.Group("/api/cafmt/v1")
	displayrs.Register(r, uc)
	return nil
}
