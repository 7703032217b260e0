// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gin wraps the gin-gonic engine and the middlewares which
// are used by cafmt, so other packages do not need to choose among
// several gin related dependencies.
package gin

import (
	"log/slog"

	ginslog "github.com/FabienMht/ginslog/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HandlerFunc = gin.HandlerFunc
type Engine = gin.Engine

// RequestIDHeader is set on every response by the RequestID middleware.
const RequestIDHeader = "X-Request-ID"

func New(middlewares ...HandlerFunc) *Engine {
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Logger logs every request using the l structured logger. The
// X-Request-ID header is left to the RequestID middleware.
func Logger(l *slog.Logger) HandlerFunc {
	return ginslog.New(l, ginslog.WithoutRequestID())
}

func Recovery() HandlerFunc {
	return gin.Recovery()
}

// RequestID keeps the X-Request-ID header of a request, or generates
// a random UUID if it is missing, and echoes it in the response.
func RequestID() HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
