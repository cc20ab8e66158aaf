// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model handles requests to display named PLY models as points:
// it validates the request, resolves the model through a [Store],
// parses and samples it, and streams the points to a [Sink].
package model

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/dexflex/dexmodel/ply"
	"github.com/dexflex/dexmodel/sample"
)

// Handler serves display requests for the models of a [Store].
type Handler struct {

	// Store has the models.
	Store Store

	// Strict parses models with [ply.Strict].
	Strict bool
}

// NewHandler returns a new [Handler] for the given store.
func NewHandler(st Store) *Handler {
	return &Handler{Store: st}
}

// List returns the names of the available models.
func (h *Handler) List(ctx context.Context) ([]string, error) {
	return h.Store.Names(ctx)
}

// Load resolves and parses the named model. It returns a
// [*NotFoundError] listing the available models if there is no
// such model, and a [*ply.FormatError] if it cannot be parsed.
func (h *Handler) Load(ctx context.Context, name string) (*ply.Mesh, error) {
	data, err := h.Store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			names := errors.Log1(h.Store.Names(ctx))
			return nil, &NotFoundError{Name: name, Available: names}
		}
		return nil, fmt.Errorf("model: opening %q: %w", name, err)
	}
	var opts []ply.Option
	if h.Strict {
		opts = append(opts, ply.Strict())
	}
	return ply.Parse(bytes.NewReader(data), opts...)
}

// Display validates the request, loads the model and emits its
// points to the sink, returning the number of points emitted.
// Nothing is emitted if the request is invalid or the model cannot
// be loaded. Emission stops at the first sink error or when ctx
// is done. If the sink is a [Flusher], it is flushed at the end.
func (h *Handler) Display(ctx context.Context, req *Request, sink Sink) (int, error) {
	cfg, err := req.Config()
	if err != nil {
		return 0, err
	}
	ms, err := h.Load(ctx, req.Name)
	if err != nil {
		return 0, err
	}
	n := 0
	for pt := range sample.Sample(ms, cfg) {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := sink.Emit(pt); err != nil {
			return n, fmt.Errorf("model: emitting point %d: %w", n, err)
		}
		n++
	}
	if fl, ok := sink.(Flusher); ok {
		if err := fl.Flush(); err != nil {
			return n, fmt.Errorf("model: flushing: %w", err)
		}
	}
	slog.Info("model: displayed", "name", req.Name, "mode", cfg.Mode, "vertices", len(ms.Vertices), "faces", len(ms.Faces), "points", n)
	return n, nil
}
