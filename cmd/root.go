// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions
// of the dexmodel tool.
package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/dexflex/dexmodel/base/fsx"
	"github.com/dexflex/dexmodel/config"
	"github.com/dexflex/dexmodel/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file used when none is given
// and it exists in the current directory.
const DefaultConfigFile = "dexmodel.toml"

// App has the state shared by the commands of one run.
type App struct {
	Config *config.Config

	// ConfigFile is the config file to load, if any.
	ConfigFile string

	// Out and Err are where results and errors are printed.
	Out, Err io.Writer
}

// NewRootCommand returns the root dexmodel command,
// printing to the given writers.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &App{Config: config.New(), Out: out, Err: errOut}
	root := &cobra.Command{
		Use:           "dexmodel",
		Short:         "Display PLY models as colored points",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	c := a.Config
	pf := root.PersistentFlags()
	pf.StringVar(&a.ConfigFile, "config", "", "config file (.toml, .yaml or .json); default "+DefaultConfigFile+" if it exists")
	pf.StringVar(&c.ModelsDir, "models", c.ModelsDir, "directory with the *.ply model files")
	pf.BoolVar(&c.Strict, "strict", c.Strict, "reject models with malformed lines")
	pf.BoolVarP(&c.Log.Verbose, "verbose", "v", c.Log.Verbose, "print informational messages")
	pf.BoolVar(&c.Log.VeryVerbose, "vv", c.Log.VeryVerbose, "print debug messages")
	pf.BoolVarP(&c.Log.Quiet, "quiet", "q", c.Log.Quiet, "only print errors")

	root.AddCommand(a.listCommand(), a.displayCommand(), a.watchCommand(), a.infoCommand())
	return root
}

// addDisplayFlags adds the flags for the display request values.
func (a *App) addDisplayFlags(fs *pflag.FlagSet) {
	d := &a.Config.Display
	o := &a.Config.Output
	fs.Float32Var(&d.Scale, "scale", d.Scale, "model scale")
	fs.Float32Var(&d.Size, "size", d.Size, "point size")
	fs.StringVar(&d.Color, "color", d.Color, "base color as hex RRGGBB")
	fs.BoolVar(&d.Depth, "depth", d.Depth, "shade points by elevation")
	fs.StringVar(&d.Mode, "mode", d.Mode, "display mode: points, wireframe or solid")
	fs.IntVar(&d.Density, "density", d.Density, "points per triangle in solid mode")
	fs.Int64Var(&d.Seed, "seed", d.Seed, "random seed for solid mode; 0 is time based")
	fs.Var((*originValue)(&d.Origin), "origin", "world position of the model origin as x,y,z")
	fs.StringVarP(&o.File, "output", "o", o.File, "output file, or - for standard output")
	fs.Var(&o.Format, "format", "output format: particle, jsonl or png")
	fs.IntVar(&o.Width, "width", o.Width, "png preview width")
	fs.IntVar(&o.Height, "height", o.Height, "png preview height")
}

// setup loads the config file, reapplies the flags that were set
// on top of it, and sets up logging.
func (a *App) setup(fs *pflag.FlagSet) error {
	file := a.ConfigFile
	if file == "" && errors.Log1(fsx.FileExists(DefaultConfigFile)) {
		file = DefaultConfigFile
	}
	if file != "" {
		set := map[string]string{}
		fs.Visit(func(f *pflag.Flag) {
			set[f.Name] = f.Value.String()
		})
		if err := config.Open(a.Config, file); err != nil {
			return err
		}
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return err
			}
		}
	}
	logx.UserLevel = a.Config.Log.Level()
	logx.SetDefaultLogger()
	return nil
}

// originValue is a [pflag.Value] for a position given as x,y,z.
type originValue [3]float32

func (o *originValue) String() string {
	return fmt.Sprintf("%g,%g,%g", o[0], o[1], o[2])
}

func (o *originValue) Set(s string) error {
	fs := strings.Split(s, ",")
	if len(fs) != 3 {
		return fmt.Errorf("expected x,y,z but got %q", s)
	}
	var v originValue
	for i, f := range fs {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return err
		}
		v[i] = float32(x)
	}
	*o = v
	return nil
}

func (o *originValue) Type() string {
	return "x,y,z"
}
