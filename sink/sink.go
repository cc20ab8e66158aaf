// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sink has the point outputs of a display: particle
// commands, JSON lines and png previews. Every sink buffers its
// output until Flush is called.
package sink

import (
	"strconv"

	"github.com/dexflex/dexmodel/sample"
)

// Collector keeps all of the points emitted to it in memory.
type Collector struct {
	Points []sample.Point
}

// Emit appends the point.
func (c *Collector) Emit(pt sample.Point) error {
	c.Points = append(c.Points, pt)
	return nil
}

// Reset removes all of the points.
func (c *Collector) Reset() {
	c.Points = c.Points[:0]
}

// appendFloat appends the shortest decimal form of v.
func appendFloat(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}
