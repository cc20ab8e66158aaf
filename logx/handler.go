// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to color level labels when the output supports it.
var UseColor = true

// levelColors are the ANSI colors of the level labels.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "6", // cyan
	slog.LevelInfo:  "4", // blue
	slog.LevelWarn:  "3", // yellow
	slog.LevelError: "1", // red
}

// SetDefaultLogger sets the default [slog] logger to one
// that writes to [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text [slog.Handler] writing to w that only
// handles messages at or above [UserLevel], and colors the level
// labels if [UseColor] is on and w is a color terminal. Time stamps
// are omitted.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := UseColor && out.Profile != termenv.Ascii
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if !color {
					return a
				}
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, ok := levelColors[lvl]
				if !ok {
					return a
				}
				return slog.String(a.Key, out.String(lvl.String()).Foreground(out.Color(c)).String())
			}
			return a
		},
	})
}
