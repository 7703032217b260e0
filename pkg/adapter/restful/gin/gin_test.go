// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/clean-fmt/pkg/adapter/config"
	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin"
	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin/routes"
	"github.com/stretchr/testify/suite"
)

type GinTestSuite struct {
	suite.Suite

	Gin *gin.Engine
}

func TestGinTestSuite(t *testing.T) {
	suite.Run(t, &GinTestSuite{})
}

func (gts *GinTestSuite) SetupSuite() {
	c := config.Default()
	gts.Require().True(*c.Server.Logger, "request logging must be on")
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	gts.Gin = c.Server.NewEngine(l)
	gts.Require().NotNil(gts.Gin, "cannot instantiate Gin engine")
	err := routes.Register(gts.Gin, c)
	gts.Require().NoError(err, "failed to register Gin routes")
}

func (gts *GinTestSuite) send(
	method, path, body string, res any,
) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, "/api/cafmt/v1/"+path, r)
	gts.Require().NoError(err, "cannot create request")
	req.Header.Add("Content-Type", "application/json")
	w := httptest.NewRecorder()
	gts.Gin.ServeHTTP(w, req)
	gts.NoError(json.Unmarshal(w.Body.Bytes(), res), "body is not json")
	return w
}

func (gts *GinTestSuite) TestSamples() {
	res := &struct{ Lines []string }{}
	w := gts.send(http.MethodGet, "samples", "", res)
	gts.Equal(200, w.Code)
	gts.Equal([]string{
		"Dublin: 53.348°N 6.260°W",
		"Oslo: 59.950°N 10.750°E",
		"Vancouver: 49.250°N 123.100°W",
		"RGB (128, 255, 90) 0x80FF5A",
		"RGB (0, 3, 254) 0x0003FE",
		"RGB (0, 0, 0) 0x000000",
	}, res.Lines)
}

func (gts *GinTestSuite) TestRequestID() {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/cafmt/v1/samples", nil)
	gts.Require().NoError(err)
	gts.Gin.ServeHTTP(w, req)
	gts.Len(w.Header().Get(gin.RequestIDHeader), 36, "expected a uuid")

	w = httptest.NewRecorder()
	req.Header.Set(gin.RequestIDHeader, "abc-123")
	gts.Gin.ServeHTTP(w, req)
	gts.Equal(
		[]string{"abc-123"}, w.Header().Values(gin.RequestIDHeader),
		"logged request must keep the incoming id",
	)
}

func (gts *GinTestSuite) TestRender() {
	for _, tc := range []struct {
		name, path, body, text string
	}{
		{
			name: "dublin",
			path: "cities/render",
			body: `{"name":"Dublin","lat":53.347778,"lon":-6.259722}`,
			text: "Dublin: 53.348°N 6.260°W",
		},
		{
			name: "null island",
			path: "cities/render",
			body: `{"name":"Null Island","lat":0,"lon":0}`,
			text: "Null Island: 0.000°N 0.000°E",
		},
		{
			name: "rgb",
			path: "colors/render",
			body: `{"red":0,"green":3,"blue":254}`,
			text: "RGB (0, 3, 254) 0x0003FE",
		},
		{
			name: "hex",
			path: "colors/render",
			body: `{"hex":"#0a0b0c"}`,
			text: "RGB (10, 11, 12) 0x0A0B0C",
		},
	} {
		gts.Run(tc.name, func() {
			res := &struct{ Text string }{}
			w := gts.send(http.MethodPost, tc.path, tc.body, res)
			gts.Equal(200, w.Code)
			gts.Equal(tc.text, res.Text)
		})
	}
}

func (gts *GinTestSuite) TestBadRequest() {
	for _, tc := range []struct {
		name, path, body string
		expected         map[string]string
	}{
		{
			name:     "malformed json",
			path:     "cities/render",
			body:     `{"name":`,
			expected: map[string]string{"detail": "unexpected EOF"},
		},
		{
			name: "empty city",
			path: "cities/render",
			body: `{}`,
			expected: map[string]string{
				"name": "failed on the 'required' tag",
				"lat":  "failed on the 'required' tag",
				"lon":  "failed on the 'required' tag",
			},
		},
		{
			name: "latitude beyond pole",
			path: "cities/render",
			body: `{"name":"x","lat":90.5,"lon":0}`,
			expected: map[string]string{
				"lat": "failed on the 'lte' tag",
			},
		},
		{
			name: "channel out of range",
			path: "colors/render",
			body: `{"red":256,"green":0,"blue":-1}`,
			expected: map[string]string{
				"red":  "failed on the 'lte' tag",
				"blue": "failed on the 'gte' tag",
			},
		},
		{
			name: "missing channels",
			path: "colors/render",
			body: `{"red":1}`,
			expected: map[string]string{
				"green": "The green channel is required.",
				"blue":  "The blue channel is required.",
			},
		},
		{
			name: "hex with channels",
			path: "colors/render",
			body: `{"hex":"000000","red":0}`,
			expected: map[string]string{
				"hex": "The hex excludes red, green, and blue.",
			},
		},
		{
			name: "bad hex",
			path: "colors/render",
			body: `{"hex":"0xZZ0000"}`,
			expected: map[string]string{
				"hex": "not a six digits hex color",
			},
		},
	} {
		gts.Run(tc.name, func() {
			res := map[string]any{}
			w := gts.send(http.MethodPost, tc.path, tc.body, &res)
			gts.Equal(400, w.Code)
			gts.Len(res, len(tc.expected), "unexpected keys: %v", res)
			for k, part := range tc.expected {
				switch v := res[k].(type) {
				case string:
					gts.Contains(v, part, k)
				case []any:
					if gts.Len(v, 1, k) {
						gts.Contains(v[0], part, k)
					}
				default:
					gts.Failf("missing key", "%s in %v", k, res)
				}
			}
		})
	}
}
