// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs
// for the dexmodel tool, and loads them from TOML,
// YAML or JSON files.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/dexflex/dexmodel/base/iox/jsonx"
	"github.com/dexflex/dexmodel/base/iox/tomlx"
	"github.com/dexflex/dexmodel/base/iox/yamlx"
	"github.com/dexflex/dexmodel/base/reflectx"
	"github.com/dexflex/dexmodel/logx"
	"github.com/dexflex/dexmodel/math32"
	"github.com/dexflex/dexmodel/model"
)

// Config is the main config struct that contains all
// of the configuration options for the dexmodel tool.
type Config struct {

	// ModelsDir is the directory with the *.ply model files.
	ModelsDir string `toml:"models_dir" yaml:"models_dir" json:"models_dir" default:"config/dexmodel"`

	// Strict rejects models with malformed vertex or face lines
	// instead of skipping those lines.
	Strict bool `toml:"strict" yaml:"strict" json:"strict"`

	// Display has the default display request values.
	Display Display `toml:"display" yaml:"display" json:"display"`

	// Output configures where and how points are written.
	Output Output `toml:"output" yaml:"output" json:"output"`

	// Log configures the logging verbosity.
	Log Log `toml:"log" yaml:"log" json:"log"`
}

// Display has the values of a display request
// other than the model name.
type Display struct {
	Scale   float32    `toml:"scale" yaml:"scale" json:"scale" default:"1"`
	Size    float32    `toml:"size" yaml:"size" json:"size" default:"1"`
	Color   string     `toml:"color" yaml:"color" json:"color" default:"#FFFFFF"`
	Depth   bool       `toml:"depth" yaml:"depth" json:"depth"`
	Mode    string     `toml:"mode" yaml:"mode" json:"mode" default:"wireframe"`
	Density int        `toml:"density" yaml:"density" json:"density" default:"20"`
	Origin  [3]float32 `toml:"origin" yaml:"origin" json:"origin" default:"[0, 0, 0]"`

	// Seed seeds the random source of solid mode; 0 is time based.
	Seed int64 `toml:"seed" yaml:"seed" json:"seed"`
}

// Output configures the point output.
type Output struct {

	// File is the output file, or - for standard output.
	File string `toml:"file" yaml:"file" json:"file" default:"-"`

	// Format is the output format.
	Format Formats `toml:"format" yaml:"format" json:"format" default:"particle"`

	// Width and Height are the pixel size of png previews.
	Width  int `toml:"width" yaml:"width" json:"width" default:"512"`
	Height int `toml:"height" yaml:"height" json:"height" default:"512"`
}

// Log configures the logging verbosity.
type Log struct {
	Verbose     bool `toml:"verbose" yaml:"verbose" json:"verbose"`
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose" json:"very_verbose"`
	Quiet       bool `toml:"quiet" yaml:"quiet" json:"quiet"`
}

// Level returns the [slog.Level] selected by the flags.
func (l *Log) Level() slog.Level {
	return logx.LevelFromFlags(l.VeryVerbose, l.Verbose, l.Quiet)
}

// New returns a new [Config] with the default values.
func New() *Config {
	c := &Config{}
	errors.Log(SetFromDefaults(c))
	return c
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values.
func SetFromDefaults(cfg any) error {
	return reflectx.SetFromDefaultTags(cfg)
}

// Open reads the given config file into cfg, with the format
// given by the file extension: .toml, .yaml, .yml or .json.
// Values not in the file are left unchanged.
func Open(cfg *Config, filename string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(cfg, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, filename)
	case ".json":
		err = jsonx.Open(cfg, filename)
	default:
		return fmt.Errorf("config.Open: unsupported config file extension %q in %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("config.Open %q: %w", filename, err)
	}
	return cfg.Validate()
}

// Validate checks the values that are not checked when
// a request is made.
func (c *Config) Validate() error {
	if !c.Output.Format.IsValid() {
		return fmt.Errorf("config: invalid output format %q", string(c.Output.Format))
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("config: invalid preview size %dx%d", c.Output.Width, c.Output.Height)
	}
	return nil
}

// Request returns a new [model.Request] for the given model
// with the display values of the config.
func (c *Config) Request(name string) *model.Request {
	d := &c.Display
	req := model.NewRequest(name)
	req.Scale = d.Scale
	req.Size = d.Size
	req.Color = d.Color
	req.Depth = d.Depth
	req.Mode = d.Mode
	req.Density = d.Density
	req.Seed = d.Seed
	req.Origin = math32.Vec3(d.Origin[0], d.Origin[1], d.Origin[2])
	return req
}
