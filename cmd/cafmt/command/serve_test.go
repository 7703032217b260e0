// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServerShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv := &http.Server{
		Addr:              "127.0.0.1:0",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, srv)
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "server did not stop after cancellation")
	}
}

func TestRunServerListenError(t *testing.T) {
	srv := &http.Server{
		Addr:              "127.0.0.1:-1",
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: time.Second,
	}
	err := runServer(context.Background(), srv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running http server")
}
