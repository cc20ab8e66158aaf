// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the normalized RGB color type used for
// point samples, along with hex parsing and depth-based shading.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/dexflex/dexmodel/math32"
)

// ErrInvalidHex is returned (wrapped) by [FromHex] for any string
// that is not exactly six hexadecimal digits with an optional leading #.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is an opaque color with three channels normalized to the 0 to 1 range.
// It implements [color.Color].
type Color struct {
	R, G, B float32
}

var (
	// White is the default base color for samples.
	White = Color{1, 1, 1}

	// Black is the zero color.
	Black = Color{}
)

// RGB returns a new [Color] from the given normalized channel values.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// RGBA implements the color.Color interface
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math32.Clamp(c.R, 0, 1)*65535.0 + 0.5)
	g = uint32(math32.Clamp(c.G, 0, 1)*65535.0 + 0.5)
	b = uint32(math32.Clamp(c.B, 0, 1)*65535.0 + 0.5)
	a = 65535
	return
}

// String returns the color in hex form, see [AsHex].
func (c Color) String() string {
	return AsHex(c)
}

// MulScalar returns the color with every channel multiplied by s.
func (c Color) MulScalar(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// IsFinite returns true if no channel is NaN or infinite.
func (c Color) IsFinite() bool {
	return math32.IsFinite(c.R) && math32.IsFinite(c.G) && math32.IsFinite(c.B)
}

// FromRGBA8 returns the color for the given 8-bit channel values.
func FromRGBA8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// AsRGBA returns the given color as an 8-bit opaque [color.RGBA].
func AsRGBA(c Color) color.RGBA {
	return color.RGBA{channel8(c.R), channel8(c.G), channel8(c.B), 255}
}

func channel8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

// FromHex parses the given hex color string and returns the
// resulting color. The string must be six hexadecimal digits,
// optionally prefixed by #, in any case. It returns an error
// wrapping [ErrInvalidHex] otherwise; see [MustFromHex] and
// [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("colors.FromHex: %w: %q", ErrInvalidHex, hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors.FromHex: %w: %q", ErrInvalidHex, hex)
	}
	return FromRGBA8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// LogFromHex parses the given hex color string
// and returns the resulting color. It logs any
// resulting error; see [FromHex] for a version
// that returns an error.
func LogFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		log.Println("error: " + err.Error())
	}
	return c
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string without a leading #, for example "FF0000".
func AsHex(c Color) string {
	r := AsRGBA(c)
	return fmt.Sprintf("%02X%02X%02X", r.R, r.G, r.B)
}
