// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the cafmt to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so the
// use cases layer does not depend on this package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/momeni/clean-fmt/pkg/core/log"
	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/momeni/clean-fmt/pkg/core/usecase/displayuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is implemented with
// primitive fields or structs which are defined locally, not models,
// so the file format is kept intact while other layers can change.
type Config struct {
	Log    Log    // structured logging settings
	Output Output // how rendered lines are written
	Server Server // REST API server settings

	// Samples lists the records to display (built-in ones if empty).
	Samples Samples `yaml:",omitempty"`
}

// Log contains the slog handler settings.
type Log struct {
	Level string `validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Output contains the settings of the display use case.
type Output struct {
	Format string `validate:"omitempty,oneof=text json"`
	Swatch bool   // whether to append a colored block to color lines
}

// Default returns a Config which uses the built-in samples, info level
// text logs, and plain text output.
func Default() *Config {
	c := &Config{}
	if err := c.ValidateAndNormalize(); err != nil {
		panic(err) // defaults are always valid
	}
	return c
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// An empty path asks for the Default settings.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes the data yaml document (unknown keys are rejected),
// validates and normalizes it, and returns the resulting Config.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAndNormalize validates the c settings and fills the missing
// items with their default values. Struct-level violations, like
// an out of range color channel, are reported as *model.ValidationError
// with a yaml-like dotted path as its Field.
func (c *Config) ValidateAndNormalize() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate.Struct: %w", err)
		}
		fe := verrs[0]
		return &model.ValidationError{
			Field:  fe.Namespace(),
			Value:  fe.Value(),
			Reason: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
		}
	}
	if err := c.Samples.normalize(); err != nil {
		return fmt.Errorf("samples: %w", err)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	c.Server.normalize()
	return nil
}

// SetupLogger installs the default slog logger, writing into w, based
// on the Log settings and returns it.
func (c *Config) SetupLogger(w io.Writer) (*slog.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.Setup(w, level, c.Log.JSON), nil
}

// DisplayOptions converts the Output settings to the functional
// options of the display use case. The decorator is only used if the
// Swatch setting is enabled.
func (c *Config) DisplayOptions(
	decorator displayuc.Decorator,
) ([]displayuc.Option, error) {
	f, err := displayuc.ParseFormat(c.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("output format %q: %w", c.Output.Format, err)
	}
	opts := []displayuc.Option{displayuc.WithFormat(f)}
	if c.Output.Swatch && decorator != nil {
		opts = append(opts, displayuc.WithDecorator(decorator))
	}
	return opts, nil
}
