// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package displayrs realizes the display resource, allowing clients
// to render their own cities and colors, or fetch the rendered samples,
// by delegating to the display use case.
package displayrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-fmt/pkg/core/cerr"
	"github.com/momeni/clean-fmt/pkg/core/log"
	"github.com/momeni/clean-fmt/pkg/core/usecase/displayuc"
)

type resource struct {
	display *displayuc.UseCase
}

// Register instantiates a resource adapting the display use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/cafmt/v1/cities/render
//     in order to render a city,
//  2. POST request to /api/cafmt/v1/colors/render
//     in order to render a color,
//  3. GET request to /api/cafmt/v1/samples
//     in order to fetch the rendered sample lines.
func Register(r *gin.RouterGroup, display *displayuc.UseCase) {
	rs := &resource{display: display}
	r.POST("cities/render", rs.RenderCity)
	r.POST("colors/render", rs.RenderColor)
	r.GET("samples", rs.Samples)
}

type textResp struct {
	Text string `json:"text"`
}

func (rs *resource) RenderCity(c *gin.Context) {
	city := rs.DserRenderCityReq(c)
	if city == nil {
		return
	}
	if err := city.Validate(); err != nil {
		log.Info(c, "rejected city",
			log.Valuer("city", *city), log.Err("err", err),
		)
		serdser.SerErr(c, cerr.Classify(err))
		return
	}
	c.JSON(http.StatusOK, textResp{Text: rs.display.Render(*city)})
}

func (rs *resource) RenderColor(c *gin.Context) {
	color := rs.DserRenderColorReq(c)
	if color == nil {
		return
	}
	c.JSON(http.StatusOK, textResp{Text: rs.display.Render(*color)})
}

func (rs *resource) Samples(c *gin.Context) {
	lines, err := rs.display.Lines(c)
	if err != nil {
		serdser.SerErr(c, cerr.Classify(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}
