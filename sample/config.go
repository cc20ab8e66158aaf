// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"github.com/dexflex/dexmodel/base/randx"
	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/math32"
)

// DefaultDensity is the number of points drawn per triangle in [Solid] mode.
const DefaultDensity = 20

// Config controls how a mesh is sampled into points.
type Config struct {

	// Scale multiplies mesh-local coordinates.
	Scale float32

	// Size is the point size; wireframe points use half of it,
	// and it also sets the spacing between wireframe points.
	Size float32

	// Color is the base color of all points.
	Color colors.Color

	// Depth shades points by elevation, see [colors.Depth].
	Depth bool

	// Mode selects how points are placed.
	Mode Modes

	// Origin is added to every scaled position.
	Origin math32.Vector3

	// Density is the number of points per triangle in [Solid] mode.
	// Values <= 0 mean [DefaultDensity].
	Density int

	// Rand is the random source for [Solid] mode.
	// If nil, the global source is used.
	Rand randx.Rand
}

// Defaults sets the default values: unit scale and size,
// white, wireframe, at the origin.
func (cfg *Config) Defaults() {
	cfg.Scale = 1
	cfg.Size = 1
	cfg.Color = colors.White
	cfg.Depth = false
	cfg.Mode = Wireframe
	cfg.Origin = math32.Vector3{}
	cfg.Density = DefaultDensity
}

// NewConfig returns a new [Config] with [Config.Defaults] set.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

func (cfg *Config) density() int {
	if cfg.Density <= 0 {
		return DefaultDensity
	}
	return cfg.Density
}

func (cfg *Config) rand() randx.Rand {
	if cfg.Rand == nil {
		return randx.NewGlobalRand()
	}
	return cfg.Rand
}
