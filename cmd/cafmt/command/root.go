// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the cafmt
// project. Commands are organized using the cobra library.
// The root command prints the sample cities and colors, while the
// city and color sub-commands render one externally supplied record
// and the serve sub-command exposes the same renderers as a REST API.
//
//	./cafmt [-c /path/of/config.yaml] [--format json] [--swatch]
//	./cafmt city -- Dublin 53.347778 -6.259722
//	./cafmt color 0 3 254
//	./cafmt color --hex 80FF5A
//	./cafmt serve [-c /path/of/config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/momeni/clean-fmt/pkg/adapter/config"
	"github.com/momeni/clean-fmt/pkg/adapter/term/swatch"
	"github.com/momeni/clean-fmt/pkg/core/log"
	"github.com/momeni/clean-fmt/pkg/core/usecase/displayuc"
	"github.com/spf13/cobra"
)

// options keeps the persistent flags and the loaded configuration
// which are shared by all sub-commands of one root command.
type options struct {
	cfgPath   string
	format    string
	logLevel  string
	swatch    bool
	trueColor bool

	cfg *config.Config
}

// NewRootCmd creates the cafmt command tree. Each call returns a fresh
// tree, with its own flags, so it may be executed more than once.
func NewRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "cafmt",
		Short: "Render cities and colors in their human-readable forms",
		Long: `Render cities and colors in their human-readable forms.
A city is shown with its latitude and longitude magnitudes, in three
decimal places, followed by their hemisphere letters (N/S and E/W).
A color is shown with its red, green, and blue channels followed by
their zero-padded uppercase hexadecimal form.

Without a sub-command, the sample cities are printed and then the sample
colors are printed, one per line. Samples may be replaced by a config
file which is passed by the -c flag or the CONFIG_FILE environment
variable.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: o.load,
		RunE:              o.printSamples,
	}
	f := rootCmd.PersistentFlags()
	f.StringVarP(&o.cfgPath, "config", "c", "", "config file path")
	f.StringVar(&o.logLevel, "log-level", "", "debug, info, warn, or error")
	rootCmd.Flags().StringVar(&o.format, "format", "", "text or json")
	rootCmd.Flags().BoolVar(&o.swatch, "swatch", false,
		"append a colored block to each color line")
	rootCmd.Flags().BoolVar(&o.trueColor, "true-color", false,
		"paint swatches even if the output is not a color terminal")

	rootCmd.AddCommand(newCityCmd(), newColorCmd(), newServeCmd(o))
	return rootCmd
}

// Execute runs a new root command which in turn parses CLI arguments
// and flags and runs the most specific cobra command. The exit code is
// zero for success and one for failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load ensures that cfgPath is set respectively by either the CLI
// args or the CONFIG_FILE environment variable, loads it (or the
// default settings if no path was given), applies the flags which
// override the config file settings, and sets up the logger.
func (o *options) load(cmd *cobra.Command, _ []string) error {
	if o.cfgPath == "" {
		o.cfgPath = os.Getenv("CONFIG_FILE")
	}
	c, err := config.Load(o.cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", o.cfgPath, err)
	}
	if o.logLevel != "" {
		c.Log.Level = o.logLevel
	}
	if o.format != "" {
		c.Output.Format = o.format
	}
	if o.swatch {
		c.Output.Swatch = true
	}
	if _, err = c.SetupLogger(cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	o.cfg = c
	log.Debug(cmd.Context(), "configs are loaded",
		log.Valuer("read_header_timeout", c.Server.ReadHeaderTimeout),
	)
	return nil
}

func (o *options) printSamples(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	s := swatch.New(lipgloss.NewRenderer(out), 2)
	if o.trueColor {
		s.TrueColor()
	}
	opts, err := o.cfg.DisplayOptions(s.Decorate)
	if err != nil {
		return fmt.Errorf("preparing display options: %w", err)
	}
	uc, err := displayuc.New(out, o.cfg, opts...)
	if err != nil {
		return fmt.Errorf("creating display use case: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err = uc.Run(ctx); err != nil {
		log.Error(ctx, "printing samples failed", log.Err("err", err))
		return fmt.Errorf("printing samples: %w", err)
	}
	return nil
}
