// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sink

import (
	"bufio"
	"io"

	"github.com/dexflex/dexmodel/sample"
	"github.com/goccy/go-json"
)

// Record is the JSON form of a point.
type Record struct {
	Pos  [3]float32 `json:"pos"`
	RGB  [3]float32 `json:"rgb"`
	Size float32    `json:"size"`
}

// NewRecord returns the [Record] for the given point.
func NewRecord(pt sample.Point) Record {
	return Record{
		Pos:  [3]float32{pt.Pos.X, pt.Pos.Y, pt.Pos.Z},
		RGB:  [3]float32{pt.Color.R, pt.Color.G, pt.Color.B},
		Size: pt.Size,
	}
}

// JSONL writes one JSON [Record] per point and line.
type JSONL struct {
	w   *bufio.Writer
	enc *json.Encoder
}

// NewJSONL returns a new [JSONL] sink writing to w.
func NewJSONL(w io.Writer) *JSONL {
	bw := bufio.NewWriter(w)
	return &JSONL{w: bw, enc: json.NewEncoder(bw)}
}

// Emit writes the record for the point.
func (j *JSONL) Emit(pt sample.Point) error {
	return j.enc.Encode(NewRecord(pt))
}

// Flush writes any buffered records.
func (j *JSONL) Flush() error {
	return j.w.Flush()
}
