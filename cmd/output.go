// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dexflex/dexmodel/config"
	"github.com/dexflex/dexmodel/model"
	"github.com/dexflex/dexmodel/sink"
)

// bufferedSink is a sink that writes its output on Flush.
type bufferedSink interface {
	model.Sink
	model.Flusher
}

// outputSink is a sink writing to the configured output,
// which is closed by Close unless it is standard output.
type outputSink struct {
	bufferedSink
	file *os.File
}

// Close closes the output file.
func (s *outputSink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// newSink returns a new sink for the configured output file and format.
func (a *App) newSink() (*outputSink, error) {
	o := &a.Config.Output
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	s := &outputSink{}
	var w io.Writer = a.Out
	if o.File != "-" {
		f, err := os.Create(o.File)
		if err != nil {
			return nil, err
		}
		s.file = f
		w = f
	}
	switch o.Format {
	case config.Particle:
		s.bufferedSink = sink.NewParticle(w)
	case config.JSONL:
		s.bufferedSink = sink.NewJSONL(w)
	case config.PNG:
		s.bufferedSink = sink.NewPreview(w, o.Width, o.Height)
	default:
		s.Close()
		return nil, fmt.Errorf("unknown output format %q", o.Format.String())
	}
	return s, nil
}
