// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/dexflex/dexmodel/model"
	"github.com/dexflex/dexmodel/sample"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func (a *App) handler() *model.Handler {
	h := model.NewHandler(model.NewDirStore(a.Config.ModelsDir))
	h.Strict = a.Config.Strict
	return h
}

// request returns the request for the given arguments, which are
// the model name optionally followed by scale, size, color, depth
// and mode. Positional values take precedence over flags.
func (a *App) request(args []string) (*model.Request, error) {
	req := a.Config.Request(args[0])
	for i, arg := range args[1:] {
		switch i {
		case 0, 1:
			f, err := strconv.ParseFloat(arg, 32)
			if err != nil {
				return nil, &model.InvalidConfigError{Field: [2]string{"scale", "size"}[i], Value: arg, Msg: "must be a number"}
			}
			if i == 0 {
				req.Scale = float32(f)
			} else {
				req.Size = float32(f)
			}
		case 2:
			req.Color = arg
		case 3:
			b, err := strconv.ParseBool(arg)
			if err != nil {
				return nil, &model.InvalidConfigError{Field: "depth", Value: arg, Msg: "must be true or false"}
			}
			req.Depth = b
		case 4:
			req.Mode = arg
		}
	}
	return req, nil
}

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.List(cmd.Context())
		},
	}
}

// List prints the names of the available models.
func (a *App) List(ctx context.Context) error {
	names, err := a.handler().List(ctx)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(a.Out)
	if len(names) == 0 {
		fmt.Fprintf(a.Out, "No models found in %s\n", a.Config.ModelsDir)
		return nil
	}
	fmt.Fprintln(a.Out, out.String("Available models:").Bold())
	for _, name := range names {
		fmt.Fprintln(a.Out, "-", name)
	}
	return nil
}

func (a *App) displayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display <name> [scale] [size] [color] [depth] [mode]",
		Short: "Display a model as points",
		Args:  cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(args)
			if err != nil {
				return err
			}
			return a.Display(cmd.Context(), req)
		},
	}
	a.addDisplayFlags(cmd.Flags())
	return cmd
}

// Display displays the requested model to the configured output.
func (a *App) Display(ctx context.Context, req *model.Request) error {
	sk, err := a.newSink()
	if err != nil {
		return err
	}
	_, err = a.handler().Display(ctx, req, sk)
	if cerr := sk.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <name> [scale] [size] [color] [depth] [mode]",
		Short: "Display a model again every time its file changes",
		Args:  cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := a.request(args)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.Watch(ctx, req)
		},
	}
	a.addDisplayFlags(cmd.Flags())
	return cmd
}

// Watch displays the requested model every time it changes,
// until ctx is done.
func (a *App) Watch(ctx context.Context, req *model.Request) error {
	if _, err := req.Config(); err != nil {
		return err
	}
	return a.handler().Watch(ctx, a.Config.ModelsDir, req, func() (model.Sink, error) {
		sk, err := a.newSink()
		if err != nil {
			return nil, err
		}
		return sk, nil
	})
}

func (a *App) infoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Print a summary of a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Info(cmd.Context(), a.Config.Request(args[0]))
		},
	}
	a.addDisplayFlags(cmd.Flags())
	return cmd
}

// Info prints the header, bounds and point counts of a model.
func (a *App) Info(ctx context.Context, req *model.Request) error {
	cfg, err := req.Config()
	if err != nil {
		return err
	}
	ms, err := a.handler().Load(ctx, req.Name)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(a.Out)
	label := func(s string) string {
		return out.String(fmt.Sprintf("%-10s", s)).Bold().String()
	}
	hd := &ms.Header
	fmt.Fprintln(a.Out, label("Model"), req.Name)
	if hd.Format != "" {
		fmt.Fprintln(a.Out, label("Format"), hd.Format)
	}
	for _, c := range hd.Comments {
		fmt.Fprintln(a.Out, label("Comment"), c)
	}
	fmt.Fprintf(a.Out, "%s %d (declared %d)\n", label("Vertices"), len(ms.Vertices), hd.NumVertex)
	fmt.Fprintf(a.Out, "%s %d (declared %d)\n", label("Faces"), len(ms.Faces), hd.NumFace)
	if !ms.IsEmpty() {
		bb := ms.Bounds()
		fmt.Fprintln(a.Out, label("Bounds"), bb.Min, "to", bb.Max)
		rng := sample.ElevationRange(ms, cfg.Scale)
		fmt.Fprintf(a.Out, "%s %g to %g\n", label("Elevation"), rng.Min, rng.Max)
	}
	var counts []string
	for _, m := range sample.ModesValues() {
		mc := *cfg
		mc.Mode = m
		counts = append(counts, fmt.Sprintf("%s %d", m, sample.Count(ms, &mc)))
	}
	fmt.Fprintln(a.Out, label("Points"), strings.Join(counts, ", "))
	return nil
}
