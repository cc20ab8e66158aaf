// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import (
	"bufio"
	"bytes"
	"image/color"
	"testing"

	"github.com/dexflex/dexmodel/base/iox/imagex"
	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/math32"
	"github.com/dexflex/dexmodel/sample"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var points = []sample.Point{
	{Pos: math32.Vec3(0, 64, 0), Color: colors.RGB(1, 0, 0), Size: 1},
	{Pos: math32.Vec3(1.5, 64.25, -2), Color: colors.RGB(0.5, 0.25, 1), Size: 0.5},
}

func TestParticle(t *testing.T) {
	var b bytes.Buffer
	p := NewParticle(&b)
	for _, pt := range points {
		require.NoError(t, p.Emit(pt))
	}
	assert.Empty(t, b.String())
	require.NoError(t, p.Flush())
	assert.Equal(t, "particle dust 1 0 0 1 0 64 0\nparticle dust 0.5 0.25 1 0.5 1.5 64.25 -2\n", b.String())
}

func TestJSONL(t *testing.T) {
	var b bytes.Buffer
	j := NewJSONL(&b)
	for _, pt := range points {
		require.NoError(t, j.Emit(pt))
	}
	require.NoError(t, j.Flush())
	sc := bufio.NewScanner(&b)
	var recs []Record
	for sc.Scan() {
		var r Record
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		recs = append(recs, r)
	}
	require.Len(t, recs, 2)
	assert.Equal(t, NewRecord(points[1]), recs[1])
	assert.Equal(t, [3]float32{1.5, 64.25, -2}, recs[1].Pos)
}

func TestCollector(t *testing.T) {
	var c Collector
	for _, pt := range points {
		require.NoError(t, c.Emit(pt))
	}
	assert.Equal(t, points, c.Points)
	c.Reset()
	assert.Empty(t, c.Points)
}

// assertNear checks that the colors differ by at most 1 per channel,
// allowing for rounding in the resize filter.
func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	for i, c := range [][2]uint8{{want.R, got.R}, {want.G, got.G}, {want.B, got.B}, {want.A, got.A}} {
		assert.InDelta(t, float64(c[0]), float64(c[1]), 1, "channel %d of %v", i, got)
	}
}

func TestPreview(t *testing.T) {
	var b bytes.Buffer
	p := NewPreview(&b, 32, 16)
	p.Background = color.White
	require.NoError(t, p.Emit(sample.Point{Pos: math32.Vec3(0, 0, 0), Color: colors.RGB(1, 0, 0), Size: 2}))
	require.NoError(t, p.Emit(sample.Point{Pos: math32.Vec3(4, 4, 0), Color: colors.RGB(0, 0, 1), Size: 2}))
	img := p.Render()
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
	// the corners away from the points keep the background
	assertNear(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(0, 0))
	assertNear(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(31, 15))

	require.NoError(t, p.Flush())
	assert.Empty(t, p.Points)
	got, f, err := imagex.Read(&b)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, 32, got.Bounds().Dx())
}

func TestPreviewEmpty(t *testing.T) {
	var b bytes.Buffer
	p := NewPreview(&b, 8, 8)
	img := p.Render()
	assertNear(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(4, 4))
	require.NoError(t, p.Flush())
	assert.NotZero(t, b.Len())
}

func TestPreviewSinglePoint(t *testing.T) {
	p := NewPreview(&bytes.Buffer{}, 9, 9)
	require.NoError(t, p.Emit(sample.Point{Pos: math32.Vec3(3, 3, 3), Color: colors.White, Size: 2}))
	img := p.Render()
	r, _, _, _ := img.At(4, 4).RGBA()
	assert.Greater(t, r, uint32(0))
}
