// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "github.com/dexflex/dexmodel/math32/minmax"

// Depth returns the color for a point at the given elevation.
// If enabled is false, base is returned unchanged. Otherwise base
// is scaled by the elevation normalized into rng, so the lowest
// point is black and the highest is base. A flat range (Min == Max)
// returns base, so the result is never NaN or infinite.
func Depth(base Color, elevation float32, rng minmax.F32, enabled bool) Color {
	if !enabled || rng.Range() == 0 {
		return base
	}
	return base.MulScalar(rng.NormValue(elevation))
}
