// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import (
	"bufio"
	"io"

	"github.com/dexflex/dexmodel/sample"
)

// Particle writes one particle command per point, of the form
//
//	particle dust R G B SIZE X Y Z
//
// with the color components in [0, 1].
type Particle struct {
	w   *bufio.Writer
	buf []byte
}

// NewParticle returns a new [Particle] sink writing to w.
func NewParticle(w io.Writer) *Particle {
	return &Particle{w: bufio.NewWriter(w)}
}

// Emit writes the command for the point.
func (p *Particle) Emit(pt sample.Point) error {
	b := append(p.buf[:0], "particle dust"...)
	for _, v := range [...]float32{pt.Color.R, pt.Color.G, pt.Color.B, pt.Size, pt.Pos.X, pt.Pos.Y, pt.Pos.Z} {
		b = append(b, ' ')
		b = appendFloat(b, v)
	}
	b = append(b, '\n')
	p.buf = b
	_, err := p.w.Write(b)
	return err
}

// Flush writes any buffered commands.
func (p *Particle) Flush() error {
	return p.w.Flush()
}
