// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample turns a parsed [ply.Mesh] into a sequence of
// positioned, colored points for display.
package sample

import (
	"iter"

	"github.com/dexflex/dexmodel/colors"
	"github.com/dexflex/dexmodel/math32"
	"github.com/dexflex/dexmodel/math32/minmax"
	"github.com/dexflex/dexmodel/ply"
)

// Point is one sample: a world-space position with a color and size.
type Point struct {
	Pos   math32.Vector3
	Color colors.Color
	Size  float32
}

// Sample returns the points for the given mesh and config.
// The sequence is finite and can be ranged over any number of times;
// each pass starts from the beginning. Only [Solid] mode draws random
// numbers, from [Config.Rand], so every other mode yields the same
// points on every pass. An empty mesh yields no points.
//
// World positions are mesh-local positions times [Config.Scale] plus
// [Config.Origin]. The mesh must satisfy the [ply.Mesh] invariants and
// neither it nor cfg may be modified while the sequence is in use.
func Sample(ms *ply.Mesh, cfg *Config) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if ms.IsEmpty() {
			return
		}
		sm := newSampler(ms, cfg)
		switch cfg.Mode {
		case Points:
			sm.points(yield)
		case Wireframe:
			sm.wireframe(yield)
		case Solid:
			sm.solid(yield)
		}
	}
}

// Count returns the number of points [Sample] yields for the given
// mesh and config, without drawing any random numbers.
func Count(ms *ply.Mesh, cfg *Config) int {
	if ms.IsEmpty() {
		return 0
	}
	switch cfg.Mode {
	case Points:
		return len(ms.Vertices)
	case Wireframe:
		sm := newSampler(ms, cfg)
		n := 0
		for _, fc := range ms.Faces {
			for i := range fc {
				st, ed := sm.world(fc[i]), sm.world(fc[(i+1)%len(fc)])
				n += sm.edgeSteps(st, ed) + 1
			}
		}
		return n
	case Solid:
		n := 0
		for _, fc := range ms.Faces {
			n += len(fc) - 2
		}
		return n * cfg.density()
	}
	return 0
}

// ElevationRange returns the min / max range of scaled vertex
// elevations (Y times scale), which is 0 to 1 for an empty mesh.
func ElevationRange(ms *ply.Mesh, scale float32) minmax.F32 {
	if ms.IsEmpty() {
		return minmax.F32{Min: 0, Max: 1}
	}
	var rng minmax.F32
	rng.SetInfinity()
	for _, v := range ms.Vertices {
		rng.FitValInRange(v.Y * scale)
	}
	return rng
}

// sampler has the per-pass state shared by the modes.
type sampler struct {
	ms  *ply.Mesh
	cfg *Config
	rng minmax.F32
}

func newSampler(ms *ply.Mesh, cfg *Config) *sampler {
	return &sampler{ms: ms, cfg: cfg, rng: ElevationRange(ms, cfg.Scale)}
}

// world returns the world position of the vertex at the given index.
func (sm *sampler) world(idx int) math32.Vector3 {
	return sm.ms.Vertices[idx].MulScalar(sm.cfg.Scale).Add(sm.cfg.Origin)
}

// color returns the color for the given scaled elevation.
func (sm *sampler) color(elevation float32) colors.Color {
	return colors.Depth(sm.cfg.Color, elevation, sm.rng, sm.cfg.Depth)
}

func (sm *sampler) points(yield func(Point) bool) {
	for i, v := range sm.ms.Vertices {
		pt := Point{Pos: sm.world(i), Color: sm.color(v.Y * sm.cfg.Scale), Size: sm.cfg.Size}
		if !yield(pt) {
			return
		}
	}
}

// edgeSteps returns the number of segments an edge is divided into,
// so that points are at most half a point size apart.
func (sm *sampler) edgeSteps(st, ed math32.Vector3) int {
	steps := int(math32.Ceil(st.DistanceTo(ed) / (sm.cfg.Size / 2)))
	return max(steps, 1)
}

func (sm *sampler) wireframe(yield func(Point) bool) {
	size := sm.cfg.Size / 2
	for _, fc := range sm.ms.Faces {
		for i := range fc {
			i0, i1 := fc[i], fc[(i+1)%len(fc)]
			st, ed := sm.world(i0), sm.world(i1)
			elev := (sm.ms.Vertices[i0].Y + sm.ms.Vertices[i1].Y) * sm.cfg.Scale / 2
			clr := sm.color(elev)
			steps := sm.edgeSteps(st, ed)
			for j := 0; j <= steps; j++ {
				pos := ed
				if j < steps {
					pos = st.Lerp(ed, float32(j)/float32(steps))
				}
				if !yield(Point{Pos: pos, Color: clr, Size: size}) {
					return
				}
			}
		}
	}
}

func (sm *sampler) solid(yield func(Point) bool) {
	rnd := sm.cfg.rand()
	n := sm.cfg.density()
	var tri math32.Triangle
	for _, fc := range sm.ms.Faces {
		for i := 0; i+2 < len(fc); i++ {
			i0, i1, i2 := fc[0], fc[i+1], fc[i+2]
			tri.A, tri.B, tri.C = sm.world(i0), sm.world(i1), sm.world(i2)
			vs := sm.ms.Vertices
			elev := (vs[i0].Y + vs[i1].Y + vs[i2].Y) * sm.cfg.Scale / 3
			clr := sm.color(elev)
			for range n {
				u, v := rnd.Float32(), rnd.Float32()
				if u+v > 1 {
					u, v = 1-u, 1-v
				}
				if !yield(Point{Pos: tri.PointAt(u, v), Color: clr, Size: sm.cfg.Size}) {
					return
				}
			}
		}
	}
}
