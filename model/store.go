// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"io/fs"
	"os"
	"strings"

	"github.com/dexflex/dexmodel/base/fsx"
)

// Ext is the file extension of model files.
const Ext = ".ply"

// Store resolves model names to their contents.
type Store interface {

	// Open returns the contents of the named model. The error
	// matches [fs.ErrNotExist] if there is no such model.
	Open(ctx context.Context, name string) ([]byte, error)

	// Names returns the sorted names of the available models.
	Names(ctx context.Context) ([]string, error)
}

// DirStore is a [Store] of the *.ply files in a directory.
type DirStore struct {

	// Dir is the directory path, used for watching; may be empty.
	Dir string

	// FS is the file system rooted at the directory.
	FS fs.FS
}

// NewDirStore returns a new [DirStore] for the given directory.
func NewDirStore(dir string) *DirStore {
	return &DirStore{Dir: dir, FS: os.DirFS(dir)}
}

// Open implements [Store]. Names must not contain path separators.
func (s *DirStore) Open(ctx context.Context, name string) ([]byte, error) {
	fn := name + Ext
	if name == "" || strings.ContainsAny(name, `/\`) || !fs.ValidPath(fn) {
		return nil, &fs.PathError{Op: "open", Path: fn, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(s.FS, fn)
}

// Names implements [Store].
func (s *DirStore) Names(ctx context.Context) ([]string, error) {
	return fsx.Filenames(s.FS, ".", Ext)
}
