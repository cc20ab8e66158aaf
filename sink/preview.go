// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import (
	"image"
	"image/color"
	"io"
	"slices"

	"github.com/anthonynsimon/bild/transform"
	"github.com/dexflex/dexmodel/base/iox/imagex"
	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/math32"
	"github.com/dexflex/dexmodel/sample"
	"golang.org/x/image/draw"
)

// Supersample is the factor by which previews are rendered larger
// than their final size before being scaled down.
const Supersample = 2

// Preview renders the points as a png image, looking at the
// model from the front: world X is to the right and world Y is up.
// Points closer to the viewer (larger Z) are drawn over farther ones.
// The image is written by Flush.
type Preview struct {
	Collector

	// Width and Height are the image size in pixels.
	Width, Height int

	// Background is the image background color.
	Background color.Color

	w io.Writer
}

// NewPreview returns a new [Preview] writing a png
// image of the given size to w.
func NewPreview(w io.Writer, width, height int) *Preview {
	return &Preview{Width: width, Height: height, Background: color.Black, w: w}
}

// Flush renders and writes the image of the points emitted so far,
// and then removes them.
func (p *Preview) Flush() error {
	img := p.Render()
	p.Reset()
	return imagex.Write(img, p.w, imagex.PNG)
}

// Render returns the image of the points emitted so far.
func (p *Preview) Render() *image.RGBA {
	sw, sh := p.Width*Supersample, p.Height*Supersample
	img := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)
	if len(p.Points) > 0 {
		p.draw(img)
	}
	return transform.Resize(img, p.Width, p.Height, transform.Linear)
}

func (p *Preview) draw(img *image.RGBA) {
	pts := slices.Clone(p.Points)
	slices.SortStableFunc(pts, func(a, b sample.Point) int {
		switch {
		case a.Pos.Z < b.Pos.Z:
			return -1
		case a.Pos.Z > b.Pos.Z:
			return 1
		}
		return 0
	})
	bb := math32.B3Empty()
	for _, pt := range pts {
		bb.ExpandByPoint(pt.Pos)
	}
	sz := img.Bounds().Size()
	margin := float32(2 * Supersample)
	ext := bb.Size()
	scale := math32.Min((float32(sz.X)-2*margin)/max(ext.X, 1e-6), (float32(sz.Y)-2*margin)/max(ext.Y, 1e-6))
	// center the model
	ox := (float32(sz.X) - ext.X*scale) / 2
	oy := (float32(sz.Y) - ext.Y*scale) / 2
	for _, pt := range pts {
		x := int(ox + (pt.Pos.X-bb.Min.X)*scale)
		y := sz.Y - 1 - int(oy+(pt.Pos.Y-bb.Min.Y)*scale)
		r := max(1, int(pt.Size*Supersample))
		dot := image.Rect(x-r+1, y-r+1, x+r, y+r).Intersect(img.Bounds())
		draw.Draw(img, dot, image.NewUniform(colors.AsRGBA(pt.Color)), image.Point{}, draw.Src)
	}
}
