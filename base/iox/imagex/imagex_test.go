// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "PNG": PNG, ".tif": TIFF, "tiff": TIFF, ".bmp": BMP} {
		f, err := ExtToFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".gif")
	assert.Error(t, err)
}

func TestWriteRead(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	im.Set(1, 2, color.RGBA{255, 128, 0, 255})
	for _, f := range []Formats{PNG, TIFF, BMP} {
		var b bytes.Buffer
		require.NoError(t, Write(im, &b, f), f.String())
		got, gf, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, gf)
		assert.Equal(t, im.Bounds(), got.Bounds())
		r, g, bl, _ := got.At(1, 2).RGBA()
		assert.Equal(t, [3]uint32{0xffff, 0x8080, 0}, [3]uint32{r, g, bl}, f.String())
	}
	assert.Error(t, Write(im, &bytes.Buffer{}, None))
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	im := image.NewRGBA(image.Rect(0, 0, 2, 2))
	fn := filepath.Join(dir, "preview.png")
	require.NoError(t, Save(im, fn))
	fp, err := os.Open(fn)
	require.NoError(t, err)
	defer fp.Close()
	_, f, err := Read(fp)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	assert.Error(t, Save(im, filepath.Join(dir, "preview.gif")))
}
