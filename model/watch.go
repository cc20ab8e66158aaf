// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch displays the request once, and then again every time its
// model file in dir is written or created, until ctx is done.
// Each display gets a fresh sink from newSink, which is closed
// afterwards if it is an [io.Closer]. Display errors are logged
// and do not stop watching, since a model may be seen mid-write.
func (h *Handler) Watch(ctx context.Context, dir string, req *Request, newSink func() (Sink, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := req.Name + Ext
	h.displayTo(ctx, req, newSink)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				slog.Debug("model: changed", "file", event.Name, "op", event.Op)
				h.displayTo(ctx, req, newSink)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

func (h *Handler) displayTo(ctx context.Context, req *Request, newSink func() (Sink, error)) {
	sk, err := newSink()
	if errors.Log(err) != nil {
		return
	}
	_, err = h.Display(ctx, req, sk)
	errors.Log(err)
	if cl, ok := sk.(io.Closer); ok {
		errors.Log(cl.Close())
	}
}
