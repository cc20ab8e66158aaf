// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/dexflex/dexmodel/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cube = `ply
format ascii 1.0
comment made by hand
element vertex 8
property float x
property float y
property float z
element face 6
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
0 0 1
1 0 1
1 1 1
0 1 1
4 0 1 2 3
4 7 6 5 4
4 0 4 5 1
4 1 5 6 2
4 2 6 7 3
4 3 7 4 0
`

func TestParseCube(t *testing.T) {
	ms, err := ParseString(cube)
	require.NoError(t, err)
	assert.Equal(t, "ascii 1.0", ms.Header.Format)
	assert.Equal(t, 8, ms.Header.NumVertex)
	assert.Equal(t, 6, ms.Header.NumFace)
	assert.Equal(t, []string{"made by hand"}, ms.Header.Comments)
	require.Len(t, ms.Vertices, 8)
	require.Len(t, ms.Faces, 6)
	assert.Equal(t, math32.Vec3(1, 1, 0), ms.Vertices[2])
	assert.Equal(t, Face{7, 6, 5, 4}, ms.Faces[1])
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 1), ms.Bounds())
	assert.False(t, ms.IsEmpty())
}

func TestParseExtraProperties(t *testing.T) {
	src := `ply
format ascii 1.0
element vertex 3
end_header
  0.5 -1e2 3   255 0 0
1 2 3 0.1
-4 5.25 6
3 0 1 2 9 9
`
	ms, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{X: 0.5, Y: -100, Z: 3}, {X: 1, Y: 2, Z: 3}, {X: -4, Y: 5.25, Z: 6}}, ms.Vertices)
	assert.Equal(t, []Face{{0, 1, 2}}, ms.Faces)
}

func TestParseMissingTerminator(t *testing.T) {
	src := `ply
format ascii 1.0
element vertex 3
0 0 0
1 0 0
0 1 0
3 0 1 2
`
	ms, err := ParseString(src)
	require.NoError(t, err)
	assert.Empty(t, ms.Vertices)
	assert.Empty(t, ms.Faces)
	assert.True(t, ms.IsEmpty())
	assert.True(t, ms.Bounds().IsEmpty())
}

func TestParseZeroVertices(t *testing.T) {
	ms, err := ParseString("ply\nelement vertex 0\nend_header\n")
	require.NoError(t, err)
	assert.Empty(t, ms.Vertices)
	assert.Empty(t, ms.Faces)

	// faces start right after the header, so any face is out of range
	_, err = ParseString("ply\nelement vertex 0\nend_header\n3 0 1 2\n")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseFirstVertexCountWins(t *testing.T) {
	src := "element vertex 1\nelement vertex 5\nend_header\n1 2 3\n"
	ms, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, 1, ms.Header.NumVertex)
	assert.Len(t, ms.Vertices, 1)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	src := `element vertex 3
end_header
0 0 0
1 x 0

1 0
1 0 0
0 1 0
3 0 1 2
not a face
2 0 1
4 0 1 2
3 2 1 0
`
	ms, err := ParseString(src)
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}, ms.Vertices)
	assert.Equal(t, []Face{{0, 1, 2}, {2, 1, 0}}, ms.Faces)
}

func TestParseStrict(t *testing.T) {
	_, err := ParseString("element vertex 2\nend_header\n0 0 0\n1 x 0\n0 1 0\n", Strict())
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 4, fe.Line)

	_, err = ParseString("element vertex 3\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1\n", Strict())
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 6, fe.Line)

	_, err = ParseString("element vertex 3\nend_header\n0 0 0\n", Strict())
	assert.ErrorIs(t, err, ErrFormat)

	ms, err := ParseString("element vertex 3\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n", Strict())
	require.NoError(t, err)
	assert.Len(t, ms.Faces, 1)
}

func TestParseFewerVerticesLenient(t *testing.T) {
	ms, err := ParseString("element vertex 4\nend_header\n0 0 0\n1 0 0\n")
	require.NoError(t, err)
	assert.Len(t, ms.Vertices, 2)
}

func TestParseFaceIndexOutOfRange(t *testing.T) {
	src := "element vertex 3\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n3 0 1 3\n"
	_, err := ParseString(src)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, 7, fe.Line)
	assert.Contains(t, fe.Error(), "out of range")

	_, err = ParseString("element vertex 3\nend_header\n0 0 0\n1 0 0\n0 1 0\n3 0 -1 2\n")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseHeaderErrors(t *testing.T) {
	_, err := ParseString("ply\nformat binary_little_endian 1.0\nelement vertex 3\nend_header\n")
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 2, fe.Line)
	assert.Contains(t, err.Error(), "expected ASCII")

	_, err = ParseString("element vertex many\nend_header\n")
	require.ErrorAs(t, err, &fe)
	assert.Error(t, errors.Unwrap(err))

	_, err = ParseString("element vertex -2\nend_header\n")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseNonFinite(t *testing.T) {
	ms, err := ParseString("element vertex 1\nend_header\nNaN 0 0\nInf 0 0\n1 1 1\n")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{X: 1, Y: 1, Z: 1}}, ms.Vertices)
}

func TestParseReadError(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk on fire")))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestParseLineTooLong(t *testing.T) {
	src := "element vertex 1\nend_header\n" + strings.Repeat("1", maxLineSize+10) + "\n"
	_, err := ParseString(src)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "ply: line 3: bad", (&FormatError{Line: 3, Msg: "bad"}).Error())
	assert.Equal(t, "ply: bad: cause", (&FormatError{Msg: "bad", Err: errors.New("cause")}).Error())
}
