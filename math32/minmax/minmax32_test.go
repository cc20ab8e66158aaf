// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	var mr F32
	mr.SetInfinity()
	assert.False(t, mr.IsValid())
	assert.True(t, mr.FitValInRange(2))
	assert.True(t, mr.FitValInRange(-2))
	assert.False(t, mr.FitValInRange(0))
	assert.True(t, mr.IsValid())
	assert.Equal(t, float32(4), mr.Range())
	assert.Equal(t, float32(0), mr.Midpoint())
	assert.Equal(t, float32(0.25), mr.Scale())
	assert.Equal(t, float32(0.75), mr.NormValue(1))
	assert.Equal(t, float32(2), mr.ClipValue(5))
	assert.True(t, mr.InRange(-1))

	mr.Set(3, 3)
	assert.Equal(t, float32(0), mr.Scale())
	assert.Equal(t, float32(0), mr.NormValue(3))
}
