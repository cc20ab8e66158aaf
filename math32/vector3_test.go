// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/dexflex/dexmodel/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, vt, va Vector3, tols ...float32) {
	t.Helper()
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 6, 3)
	assert.Equal(t, Vec3(5, 8, 6), a.Add(b))
	assert.Equal(t, Vec3(3, 4, 0), b.Sub(a))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, float32(5), a.DistanceTo(b))
	assert.Equal(t, float32(25), b.Sub(a).LengthSquared())
	assert.Equal(t, float32(25), a.Dot(b))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	tolAssertEqualVector(t, Vec3(2.5, 4, 3), a.Lerp(b, 0.5))

	c := a
	c.SetAdd(b)
	c.SetSub(a)
	assert.Equal(t, b, c)

	c.SetMin(Vec3(0, 10, 3))
	assert.Equal(t, Vec3(0, 6, 3), c)
	c.SetMax(Vec3(1, 10, 0))
	assert.Equal(t, Vec3(1, 10, 3), c)

	assert.True(t, Vector3{}.IsNil())
	assert.True(t, a.IsFinite())
	assert.False(t, Vec3(Infinity, 0, 0).IsFinite())
	assert.Equal(t, "(1, 2, 3)", a.String())
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.SetFromPoints([]Vector3{Vec3(1, -2, 0), Vec3(-1, 4, 2), Vec3(0, 0, 1)})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(-1, -2, 0, 1, 4, 2), b)
	assert.Equal(t, Vec3(0, 1, 1), b.Center())
	assert.Equal(t, Vec3(2, 6, 2), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, 0, 0)))
	assert.False(t, b.ContainsPoint(Vec3(0, 5, 0)))
	assert.Equal(t, B3(-2, -8, -4, 2, 4, 0), b.MulScalar(-2))
	assert.Equal(t, B3(0, -1, 1, 2, 5, 3), b.Translate(Vec3(1, 1, 1)))
}

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(0, 2, 0))
	tolassert.EqualTol(t, 2, tri.Area(), standardTol)
	tolAssertEqualVector(t, Vec3(2.0/3, 2.0/3, 0), tri.Midpoint())
	tolAssertEqualVector(t, Vec3(0.5, 0.5, 0), tri.PointAt(0.25, 0.25))
	assert.True(t, tri.ContainsPoint(Vec3(0.5, 0.5, 0)))
	assert.False(t, tri.ContainsPoint(Vec3(2, 2, 0)))
	tolAssertEqualVector(t, Vec3(0.5, 0.25, 0.25), tri.BarycoordFromPoint(Vec3(0.5, 0.5, 0)))

	var st Triangle
	st.SetFromPointsAndIndices([]Vector3{Vec3(1, 1, 1), Vec3(2, 2, 2), Vec3(3, 3, 3)}, 2, 0, 1)
	assert.Equal(t, Vec3(3, 3, 3), st.A)
	// colinear
	assert.Equal(t, Vec3(-2, -1, -1), st.BarycoordFromPoint(Vec3(1, 1, 1)))
}

func TestMath(t *testing.T) {
	assert.Equal(t, float32(3), Ceil(2.1))
	assert.Equal(t, float32(2), Sqrt(4))
	assert.Equal(t, float32(1), Abs(-1))
	assert.Equal(t, float32(1), Clamp(5, 0, 1))
	assert.Equal(t, float32(0), Clamp(-5, 0, 1))
	assert.True(t, IsNaN(Sqrt(-1)))
	assert.False(t, IsFinite(Infinity))
}
