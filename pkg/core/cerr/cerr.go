// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr annotates errors with the HTTP status code which should
// be reported by the REST adapter. Use cases wrap their errors using
// these helpers, so the adapter may map them with no knowledge of the
// model layer error types.
package cerr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/momeni/clean-fmt/pkg/core/model"
)

// Error wraps Err and records its HTTPStatusCode.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func Internal(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusInternalServerError}
}

// Classify wraps err as a BadRequest if it is (or wraps) one of the
// model.ValidationError or model.FormatError types, and as an Internal
// error otherwise. A nil err is returned as nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var verr *model.ValidationError
	var ferr *model.FormatError
	if errors.As(err, &verr) || errors.As(err, &ferr) {
		return BadRequest(err)
	}
	return Internal(err)
}
