// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package displayrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/clean-fmt/pkg/core/model"
)

type renderCityReq struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon  *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

type renderColorReq struct {
	Red   *int   `json:"red" binding:"omitempty,gte=0,lte=255"`
	Green *int   `json:"green" binding:"omitempty,gte=0,lte=255"`
	Blue  *int   `json:"blue" binding:"omitempty,gte=0,lte=255"`
	Hex   string `json:"hex" binding:"omitempty,max=9"`
}

func (rs *resource) DserRenderCityReq(c *gin.Context) *model.City {
	req := &renderCityReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	city := model.NewCity(req.Name, *req.Lat, *req.Lon)
	return &city
}

func (rs *resource) DserRenderColorReq(c *gin.Context) *model.Color {
	req := &renderColorReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	var color model.Color
	if req.Hex != "" {
		if !serdser.Assert(&errs,
			req.Red == nil && req.Green == nil && req.Blue == nil,
			"hex", "The hex excludes red, green, and blue.",
		) {
			return nil
		}
		var err error
		color, err = model.ParseHex(req.Hex)
		if !serdser.Assert(&errs, err == nil, "hex", errMsg(err)) {
			return nil
		}
		return &color
	}
	ok := serdser.Assert(&errs, req.Red != nil, "red", "The red channel is required.")
	ok = serdser.Assert(&errs, req.Green != nil, "green", "The green channel is required.") && ok
	ok = serdser.Assert(&errs, req.Blue != nil, "blue", "The blue channel is required.") && ok
	if !ok {
		return nil
	}
	color, err := model.NewColor(*req.Red, *req.Green, *req.Blue)
	if !serdser.Assert(&errs, err == nil, "rgb", errMsg(err)) {
		return nil
	}
	return &color
}

func errMsg(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
