// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/dexflex/dexmodel/math32"
)

// maxLineSize is the longest line accepted by the parser.
const maxLineSize = 1 << 20

// Option configures [Parse].
type Option func(p *parser)

// Strict makes malformed vertex and face records a [FormatError]
// instead of skipping them, and requires all declared vertices
// to be present.
func Strict() Option {
	return func(p *parser) {
		p.strict = true
	}
}

// ParseString parses the given ASCII PLY text; see [Parse].
func ParseString(s string, opts ...Option) (*Mesh, error) {
	return Parse(strings.NewReader(s), opts...)
}

// Parse reads ASCII PLY text from r and returns the resulting [Mesh].
//
// The header is scanned until an end_header line; the first
// "element vertex N" line sets the number of vertex records that follow.
// If there is no end_header line, the result is an empty Mesh and no error.
// By default, vertex lines without three numeric values and face lines
// that are not a count followed by that many indices are skipped
// (see [Strict]). A face that references a vertex index out of range
// is always a [FormatError].
func Parse(r io.Reader, opts ...Option) (*Mesh, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.sc = bufio.NewScanner(r)
	p.sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	ms, err := p.parse()
	if err != nil {
		return nil, err
	}
	slog.Debug("ply: parsed mesh", "vertices", len(ms.Vertices), "faces", len(ms.Faces), "skipped", p.skipped)
	return ms, nil
}

type parser struct {
	sc     *bufio.Scanner
	strict bool

	// line is the 1-based number of the current line.
	line int

	// skipped is the number of malformed records skipped.
	skipped int

	// faceLines are the line numbers of the accepted faces.
	faceLines []int
}

func (p *parser) next() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++
	return strings.TrimSpace(p.sc.Text()), true
}

func (p *parser) parse() (*Mesh, error) {
	ms := &Mesh{}
	ended, err := p.header(&ms.Header)
	if err != nil {
		return nil, err
	}
	if !ended {
		if err := p.scanErr(); err != nil {
			return nil, err
		}
		slog.Debug("ply: no end_header line, mesh is empty", "lines", p.line)
		return ms, nil
	}
	if err := p.vertices(ms); err != nil {
		return nil, err
	}
	if err := p.faces(ms); err != nil {
		return nil, err
	}
	if err := p.scanErr(); err != nil {
		return nil, err
	}
	if err := p.validate(ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (p *parser) scanErr() error {
	err := p.sc.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, bufio.ErrTooLong) {
		return &FormatError{Line: p.line + 1, Msg: "line too long", Err: err}
	}
	return fmt.Errorf("ply: reading: %w", err)
}

// header reads the header lines into hd, returning whether
// the end_header terminator was found.
func (p *parser) header(hd *Header) (bool, error) {
	gotVertex := false
	for {
		ln, ok := p.next()
		if !ok {
			return false, nil
		}
		if ln == "end_header" {
			return true, nil
		}
		fs := strings.Fields(ln)
		if len(fs) == 0 {
			continue
		}
		switch fs[0] {
		case "format":
			hd.Format = strings.Join(fs[1:], " ")
			if len(fs) > 1 && fs[1] != "ascii" {
				return false, formatErrorf(p.line, "unsupported format %q (expected ASCII)", fs[1])
			}
		case "comment":
			hd.Comments = append(hd.Comments, strings.TrimSpace(strings.TrimPrefix(ln, "comment")))
		case "element":
			if len(fs) < 3 {
				continue
			}
			switch fs[1] {
			case "vertex":
				if gotVertex {
					continue
				}
				n, err := strconv.Atoi(fs[2])
				if err != nil {
					return false, &FormatError{Line: p.line, Msg: "invalid vertex count", Err: err}
				}
				if n < 0 {
					return false, formatErrorf(p.line, "negative vertex count %d", n)
				}
				hd.NumVertex = n
				gotVertex = true
			case "face":
				if n, err := strconv.Atoi(fs[2]); err == nil {
					hd.NumFace = n
				}
			}
		}
	}
}

func (p *parser) vertices(ms *Mesh) error {
	n := ms.Header.NumVertex
	ms.Vertices = make([]math32.Vector3, 0, min(n, 1<<16))
	for len(ms.Vertices) < n {
		ln, ok := p.next()
		if !ok {
			break
		}
		if ln == "" {
			continue
		}
		v, ok := parseVertex(strings.Fields(ln))
		if !ok {
			if p.strict {
				return formatErrorf(p.line, "invalid vertex record %q", ln)
			}
			p.skipped++
			continue
		}
		ms.Vertices = append(ms.Vertices, v)
	}
	if len(ms.Vertices) < n {
		if p.strict {
			return formatErrorf(0, "expected %d vertices, found %d", n, len(ms.Vertices))
		}
		slog.Debug("ply: fewer vertices than declared", "declared", n, "found", len(ms.Vertices))
	}
	return nil
}

// parseVertex returns the position from the first three fields,
// which must all be finite numbers.
func parseVertex(fs []string) (math32.Vector3, bool) {
	if len(fs) < 3 {
		return math32.Vector3{}, false
	}
	var c [3]float32
	for i := range c {
		f, err := strconv.ParseFloat(fs[i], 32)
		if err != nil {
			return math32.Vector3{}, false
		}
		c[i] = float32(f)
		if !math32.IsFinite(c[i]) {
			return math32.Vector3{}, false
		}
	}
	return math32.Vec3(c[0], c[1], c[2]), true
}

func (p *parser) faces(ms *Mesh) error {
	for {
		ln, ok := p.next()
		if !ok {
			return nil
		}
		if ln == "" {
			continue
		}
		fc, ok := parseFace(strings.Fields(ln))
		if !ok {
			if p.strict {
				return formatErrorf(p.line, "invalid face record %q", ln)
			}
			p.skipped++
			continue
		}
		ms.Faces = append(ms.Faces, fc)
		p.faceLines = append(p.faceLines, p.line)
	}
}

// parseFace parses a vertex count k >= 3 followed by k indices.
// Any further fields (other face properties) are ignored.
func parseFace(fs []string) (Face, bool) {
	if len(fs) == 0 {
		return nil, false
	}
	k, err := strconv.Atoi(fs[0])
	if err != nil || k < 3 || len(fs) < k+1 {
		return nil, false
	}
	fc := make(Face, k)
	for i := range fc {
		fc[i], err = strconv.Atoi(fs[i+1])
		if err != nil {
			return nil, false
		}
	}
	return fc, true
}

// validate checks that every face index refers to a parsed vertex.
func (p *parser) validate(ms *Mesh) error {
	nv := len(ms.Vertices)
	for fi, fc := range ms.Faces {
		for _, idx := range fc {
			if idx < 0 || idx >= nv {
				return formatErrorf(p.faceLines[fi], "face %d: vertex index %d out of range [0, %d)", fi, idx, nv)
			}
		}
	}
	return nil
}
