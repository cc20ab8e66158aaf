// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"

	"github.com/dexflex/dexmodel/base/randx"
	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/math32"
	"github.com/dexflex/dexmodel/sample"
)

// Bounds of the request values.
const (
	MinScale   float32 = 0.1
	MaxScale   float32 = 100
	MinSize    float32 = 0.1
	MaxSize    float32 = 10
	MaxDensity         = 1000
)

// Request is a request to display a model as points.
type Request struct {

	// Name is the model name, without extension.
	Name string

	// Scale multiplies model coordinates, in [MinScale, MaxScale].
	Scale float32

	// Size is the point size, in [MinSize, MaxSize].
	Size float32

	// Color is the base color as 6 hex digits with an optional #.
	Color string

	// Depth shades points by their elevation.
	Depth bool

	// Mode is one of points, wireframe or solid.
	Mode string

	// Origin is the world position of the model origin.
	Origin math32.Vector3

	// Density is the number of points per triangle in solid mode,
	// in [0, MaxDensity]; 0 means [sample.DefaultDensity].
	Density int

	// Seed seeds the random source of solid mode.
	// 0 means a time based seed.
	Seed int64
}

// NewRequest returns a new [Request] for the given model
// with the default values.
func NewRequest(name string) *Request {
	return &Request{
		Name:  name,
		Scale: 1,
		Size:  1,
		Color: "#FFFFFF",
		Mode:  sample.Wireframe.String(),
	}
}

// Config validates the request and returns the corresponding
// [sample.Config]. It returns an [*InvalidConfigError] for
// values out of bounds and an [*InvalidColorError] for a bad color.
func (r *Request) Config() (*sample.Config, error) {
	if !(r.Scale >= MinScale && r.Scale <= MaxScale) {
		return nil, &InvalidConfigError{Field: "scale", Value: r.Scale, Msg: fmt.Sprintf("must be between %g and %g", MinScale, MaxScale)}
	}
	if !(r.Size >= MinSize && r.Size <= MaxSize) {
		return nil, &InvalidConfigError{Field: "size", Value: r.Size, Msg: fmt.Sprintf("must be between %g and %g", MinSize, MaxSize)}
	}
	if r.Density < 0 || r.Density > MaxDensity {
		return nil, &InvalidConfigError{Field: "density", Value: r.Density, Msg: fmt.Sprintf("must be between 0 and %d", MaxDensity)}
	}
	if !r.Origin.IsFinite() {
		return nil, &InvalidConfigError{Field: "origin", Value: r.Origin, Msg: "must be finite"}
	}
	clr, err := colors.FromHex(r.Color)
	if err != nil {
		return nil, &InvalidColorError{Color: r.Color, Err: err}
	}
	cfg := sample.NewConfig()
	if err := cfg.Mode.SetString(r.Mode); err != nil {
		return nil, &InvalidConfigError{Field: "mode", Value: r.Mode, Msg: "must be points, wireframe or solid"}
	}
	cfg.Scale = r.Scale
	cfg.Size = r.Size
	cfg.Color = clr
	cfg.Depth = r.Depth
	cfg.Origin = r.Origin
	if r.Density > 0 {
		cfg.Density = r.Density
	}
	if cfg.Mode == sample.Solid {
		cfg.Rand = randx.ForSeed(r.Seed)
	}
	return cfg, nil
}
