// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"strconv"

	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/spf13/cobra"
)

func newCityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "city NAME LAT LON",
		Short: "Render one city",
		Long: `Render one city which is given by its name, latitude, and
longitude (in signed degrees). Negative numbers must be separated from
the flags by a "--" argument, e.g.,

	cafmt city -- Dublin 53.347778 -6.259722

The latitude must be in [-90, 90] and the longitude in [-180, 180].`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing lat: %w", err)
			}
			lon, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("parsing lon: %w", err)
			}
			city := model.NewCity(args[0], lat, lon)
			if err = city.Validate(); err != nil {
				return fmt.Errorf("city %#v: %w", city, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), city)
			return err
		},
	}
}

func newColorCmd() *cobra.Command {
	var hex string
	cmd := &cobra.Command{
		Use:   "color {RED GREEN BLUE | --hex RRGGBB}",
		Short: "Render one color",
		Long: `Render one color which is given either by its red, green,
and blue channels (each one in [0, 255]) or by its hexadecimal form.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if hex != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(hex, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), c)
			return err
		},
	}
	cmd.Flags().StringVar(&hex, "hex", "", "RRGGBB, 0xRRGGBB, or #RRGGBB")
	return cmd
}

func parseColor(hex string, args []string) (model.Color, error) {
	if hex != "" {
		c, err := model.ParseHex(hex)
		if err != nil {
			return c, fmt.Errorf("model.ParseHex(%q): %w", hex, err)
		}
		return c, nil
	}
	var ch [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return model.Color{}, fmt.Errorf("parsing channel #%d: %w", i, err)
		}
		ch[i] = v
	}
	c, err := model.NewColor(ch[0], ch[1], ch[2])
	if err != nil {
		return c, fmt.Errorf("model.NewColor(%v): %w", ch, err)
	}
	return c, nil
}
