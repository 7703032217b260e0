// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package displayuc_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/momeni/clean-fmt/pkg/core/model"
	"github.com/momeni/clean-fmt/pkg/core/usecase/displayuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSamples struct {
	cities    []model.City
	colors    []model.Color
	citiesErr error
	colorsErr error
}

func (fs *fakeSamples) Cities(context.Context) ([]model.City, error) {
	return fs.cities, fs.citiesErr
}

func (fs *fakeSamples) Colors(context.Context) ([]model.Color, error) {
	return fs.colors, fs.colorsErr
}

func fixed() *fakeSamples {
	return &fakeSamples{
		cities: model.SampleCities(),
		colors: model.SampleColors(),
	}
}

const expectedText = `Dublin: 53.348°N 6.260°W
Oslo: 59.950°N 10.750°E
Vancouver: 49.250°N 123.100°W
RGB (128, 255, 90) 0x80FF5A
RGB (0, 3, 254) 0x0003FE
RGB (0, 0, 0) 0x000000
`

func Example() {
	uc, err := displayuc.New(os.Stdout, fixed())
	if err != nil {
		panic(err)
	}
	if err = uc.Run(context.Background()); err != nil {
		panic(err)
	}
	// Output:
	// Dublin: 53.348°N 6.260°W
	// Oslo: 59.950°N 10.750°E
	// Vancouver: 49.250°N 123.100°W
	// RGB (128, 255, 90) 0x80FF5A
	// RGB (0, 3, 254) 0x0003FE
	// RGB (0, 0, 0) 0x000000
}

func TestRunText(t *testing.T) {
	var buf bytes.Buffer
	uc, err := displayuc.New(&buf, fixed())
	require.NoError(t, err)
	require.NoError(t, uc.Run(context.Background()))
	assert.Equal(t, expectedText, buf.String())
}

func TestRunJSON(t *testing.T) {
	var buf bytes.Buffer
	uc, err := displayuc.New(&buf, &fakeSamples{
		cities: model.SampleCities()[1:2],
		colors: model.SampleColors()[2:],
	}, displayuc.WithFormat(displayuc.FormatJSON))
	require.NoError(t, err)
	require.NoError(t, uc.Run(context.Background()))
	assert.Equal(t,
		`{"kind":"city","text":"Oslo: 59.950°N 10.750°E"}`+"\n"+
			`{"kind":"color","text":"RGB (0, 0, 0) 0x000000"}`+"\n",
		buf.String(),
	)
}

func TestDecoratorAppliesToColorsOnly(t *testing.T) {
	var buf bytes.Buffer
	var seen []model.Color
	uc, err := displayuc.New(&buf, fixed(), displayuc.WithDecorator(
		func(c model.Color, line string) string {
			seen = append(seen, c)
			return line + " #" + c.Hex()
		},
	))
	require.NoError(t, err)
	require.NoError(t, uc.Run(context.Background()))

	assert.Equal(t, model.SampleColors(), seen)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Dublin: 53.348°N 6.260°W", lines[0])
	assert.Equal(t, "RGB (0, 3, 254) 0x0003FE #0003FE", lines[4])
}

func TestLines(t *testing.T) {
	uc, err := displayuc.New(nil, fixed(), displayuc.WithDecorator(
		func(_ model.Color, line string) string { return "decorated" },
	))
	require.NoError(t, err)
	lines, err := uc.Lines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expectedText, strings.Join(lines, "\n")+"\n")
}

func TestOptions(t *testing.T) {
	_, err := displayuc.New(nil, fixed(),
		displayuc.WithFormat(displayuc.FormatText),
		displayuc.WithFormat(displayuc.FormatJSON),
	)
	assert.Error(t, err)

	_, err = displayuc.New(nil, fixed(), displayuc.WithFormat(42))
	assert.Error(t, err)

	_, err = displayuc.New(nil, fixed(), displayuc.WithDecorator(nil))
	assert.Error(t, err)

	f, err := displayuc.ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, "json", f.String())
	_, err = displayuc.ParseFormat("yaml")
	assert.ErrorIs(t, err, displayuc.ErrUnknownFormat)
}

func TestRunErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, tc := range []struct {
		name    string
		samples *fakeSamples
		ctx     func() context.Context
		msg     string
		err     error
	}{
		{
			name:    "cities",
			samples: &fakeSamples{citiesErr: boom},
			msg:     "fetching cities: boom",
			err:     boom,
		},
		{
			name:    "colors",
			samples: &fakeSamples{colorsErr: boom},
			msg:     "fetching colors: boom",
			err:     boom,
		},
		{
			name:    "cancelled",
			samples: fixed(),
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			msg: "context canceled",
			err: context.Canceled,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			uc, err := displayuc.New(&buf, tc.samples)
			require.NoError(t, err)
			ctx := context.Background()
			if tc.ctx != nil {
				ctx = tc.ctx()
			}
			err = uc.Run(ctx)
			assert.ErrorIs(t, err, tc.err)
			assert.EqualError(t, err, tc.msg)
			assert.Empty(t, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunWriterError(t *testing.T) {
	uc, err := displayuc.New(failingWriter{}, fixed())
	require.NoError(t, err)
	err = uc.Run(context.Background())
	assert.EqualError(t, err, "city #0: writing line: disk full")
}
