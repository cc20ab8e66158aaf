// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "github.com/dexflex/dexmodel/sample"

// Sink receives the points of a display, one at a time.
type Sink interface {
	Emit(pt sample.Point) error
}

// Flusher is implemented by sinks that buffer points;
// Flush is called once all points have been emitted.
type Flusher interface {
	Flush() error
}

// SinkFunc is a function that implements [Sink].
type SinkFunc func(pt sample.Point) error

// Emit calls f(pt).
func (f SinkFunc) Emit(pt sample.Point) error {
	return f(pt)
}
