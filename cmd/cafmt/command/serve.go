// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/clean-fmt/pkg/adapter/restful/gin/routes"
	"github.com/momeni/clean-fmt/pkg/core/log"
	"github.com/spf13/cobra"
)

func newServeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the REST API server which renders cities and colors
given as JSON requests and reports the rendered samples.
The listening address and request logging are read from the server
section of the config file. The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: o.serve,
	}
}

func (o *options) serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	e := o.cfg.Server.NewEngine(slog.Default())
	if err := routes.Register(e, o.cfg); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	return runServer(ctx, o.cfg.Server.HTTPServer(e))
}

// runServer serves srv until it fails or ctx is done. In the latter
// case, srv is shut down gracefully and nil is returned.
func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(ctx, "listening", slog.String("address", srv.Addr))
	select {
	case err := <-errCh:
		return fmt.Errorf("running http server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), 10*time.Second,
	)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running http server: %w", err)
	}
	log.Info(ctx, "stopped")
	return nil
}
