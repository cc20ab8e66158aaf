// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ply parses the ASCII variant of the PLY polygon file format
// into a [Mesh] of vertex positions and polygonal faces.
//
// Only the first three properties of each vertex record (x, y, z) are
// used, and faces are read as a vertex count followed by that many
// vertex indices. Binary encodings are not supported.
package ply

import (
	"github.com/dexflex/dexmodel/math32"
)

// Face is an ordered list of indices into [Mesh.Vertices],
// describing one polygon of at least three vertices.
type Face []int

// Header has the information declared in the header of a PLY file.
type Header struct {
	// Format is the value of the format line, e.g. "ascii 1.0".
	Format string

	// NumVertex is the declared number of vertex records.
	NumVertex int

	// NumFace is the declared number of face records, if any.
	// It is informational only: all lines after the vertex
	// block are read as faces.
	NumFace int

	// Comments are the comment lines, without the leading keyword.
	Comments []string
}

// Mesh is the geometry parsed from a PLY file. It is not modified
// after [Parse] returns, and every index in Faces is a valid index
// into Vertices.
type Mesh struct {
	Header Header

	// Vertices are the vertex positions in mesh-local units.
	Vertices []math32.Vector3

	// Faces are the polygons, referencing Vertices by index.
	Faces []Face
}

// IsEmpty returns true if the mesh has no vertices.
func (ms *Mesh) IsEmpty() bool {
	return len(ms.Vertices) == 0
}

// Bounds returns the bounding box of all vertices,
// which is empty (see [math32.Box3.IsEmpty]) for an empty mesh.
func (ms *Mesh) Bounds() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoints(ms.Vertices)
	return bb
}
