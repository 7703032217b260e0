// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin"
)

// Server contains the REST API server settings. Pointer fields may be
// left out of the config file and get their defaults by normalize.
type Server struct {
	Address           string    // listening address, like :8080
	Logger            *bool     // whether to log requests with ginslog
	ReadHeaderTimeout *Duration `yaml:"read-header-timeout"`
}

func (s *Server) normalize() {
	if s.Address == "" {
		s.Address = ":8080"
	}
	if s.Logger == nil {
		t := true
		s.Logger = &t
	}
	if s.ReadHeaderTimeout == nil {
		d := Duration(5 * time.Second)
		s.ReadHeaderTimeout = &d
	}
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the `s` settings. Requests are logged by l if Logger is enabled.
func (s Server) NewEngine(l *slog.Logger) *gin.Engine {
	middlewares := []gin.HandlerFunc{gin.RequestID()}
	if *s.Logger {
		middlewares = append(middlewares, gin.Logger(l))
	}
	middlewares = append(middlewares, gin.Recovery())
	return gin.New(middlewares...)
}

// HTTPServer wraps h in a http.Server which listens on Address.
func (s Server) HTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              s.Address,
		Handler:           h,
		ReadHeaderTimeout: time.Duration(*s.ReadHeaderTimeout),
	}
}
