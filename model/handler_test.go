// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/ply"
	"github.com/dexflex/dexmodel/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tetra = `ply
format ascii 1.0
element vertex 4
element face 4
end_header
0 0 0
1 0 0
0 1 0
0 0 1
3 0 1 2
3 0 1 3
3 0 2 3
3 1 2 3
`

func testStore() *DirStore {
	return &DirStore{FS: fstest.MapFS{
		"tetra.ply":  {Data: []byte(tetra)},
		"broken.ply": {Data: []byte("element vertex 1\nend_header\n0 0 0\n3 0 1 2\n")},
		"notes.txt":  {Data: []byte("not a model")},
	}}
}

type collect struct {
	pts     []sample.Point
	flushed bool
	fail    int
}

func (c *collect) Emit(pt sample.Point) error {
	if c.fail > 0 && len(c.pts) == c.fail {
		return errors.New("sink full")
	}
	c.pts = append(c.pts, pt)
	return nil
}

func (c *collect) Flush() error {
	c.flushed = true
	return nil
}

func TestDirStore(t *testing.T) {
	st := testStore()
	ctx := context.Background()
	names, err := st.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "tetra"}, names)

	data, err := st.Open(ctx, "tetra")
	require.NoError(t, err)
	assert.Equal(t, tetra, string(data))

	for _, bad := range []string{"missing", "", "../tetra", "sub/tetra", `sub\tetra`} {
		_, err = st.Open(ctx, bad)
		assert.ErrorIs(t, err, fs.ErrNotExist, bad)
	}
}

func TestHandlerList(t *testing.T) {
	h := NewHandler(testStore())
	names, err := h.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "tetra"}, names)
}

func TestHandlerDisplayPoints(t *testing.T) {
	h := NewHandler(testStore())
	req := NewRequest("tetra")
	req.Mode = "points"
	req.Color = "#FF0000"
	sk := &collect{}
	n, err := h.Display(context.Background(), req, sk)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, sk.pts, 4)
	assert.True(t, sk.flushed)
	for _, pt := range sk.pts {
		assert.Equal(t, colors.RGB(1, 0, 0), pt.Color)
	}
}

func TestHandlerDisplayModes(t *testing.T) {
	h := NewHandler(testStore())
	ms, err := h.Load(context.Background(), "tetra")
	require.NoError(t, err)
	for _, mode := range sample.ModesValues() {
		req := NewRequest("tetra")
		req.Mode = mode.String()
		req.Seed = 5
		cfg, err := req.Config()
		require.NoError(t, err)
		sk := &collect{}
		n, err := h.Display(context.Background(), req, sk)
		require.NoError(t, err)
		assert.Equal(t, sample.Count(ms, cfg), n, mode.String())
	}
}

func TestHandlerNotFound(t *testing.T) {
	h := NewHandler(testStore())
	sk := &collect{}
	_, err := h.Display(context.Background(), NewRequest("teapot"), sk)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "teapot", nf.Name)
	assert.Equal(t, []string{"broken", "tetra"}, nf.Available)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, sk.pts)
}

func TestHandlerFormatError(t *testing.T) {
	h := NewHandler(testStore())
	sk := &collect{}
	_, err := h.Display(context.Background(), NewRequest("broken"), sk)
	var fe *ply.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Empty(t, sk.pts)
	assert.False(t, sk.flushed)
}

func TestHandlerStrict(t *testing.T) {
	st := &DirStore{FS: fstest.MapFS{
		"loose.ply": {Data: []byte("element vertex 1\nend_header\nx y z\n0 0 0\n")},
	}}
	h := NewHandler(st)
	ms, err := h.Load(context.Background(), "loose")
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 1)

	h.Strict = true
	_, err = h.Load(context.Background(), "loose")
	assert.ErrorIs(t, err, ply.ErrFormat)
}

func TestHandlerInvalidRequest(t *testing.T) {
	h := NewHandler(testStore())
	req := NewRequest("teapot")
	req.Color = "blue"
	_, err := h.Display(context.Background(), req, &collect{})
	var ce *InvalidColorError
	assert.ErrorAs(t, err, &ce)
}

func TestHandlerSinkError(t *testing.T) {
	h := NewHandler(testStore())
	sk := &collect{fail: 3}
	n, err := h.Display(context.Background(), NewRequest("tetra"), sk)
	assert.Error(t, err)
	assert.Equal(t, 3, n)
	assert.False(t, sk.flushed)
}

func TestHandlerCanceled(t *testing.T) {
	h := NewHandler(testStore())
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	sk := SinkFunc(func(pt sample.Point) error {
		n++
		if n == 2 {
			cancel()
		}
		return nil
	})
	emitted, err := h.Display(ctx, NewRequest("tetra"), sk)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, emitted)
}

type errStore struct{}

func (errStore) Open(ctx context.Context, name string) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func (errStore) Names(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestHandlerStoreError(t *testing.T) {
	h := NewHandler(errStore{})
	_, err := h.Load(context.Background(), "x")
	require.Error(t, err)
	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
	assert.Contains(t, err.Error(), "permission denied")
}
