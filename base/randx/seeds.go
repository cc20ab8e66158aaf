// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// NewSeed returns a seed based on the current time,
// used when the user has not asked for a specific one.
func NewSeed() int64 {
	return time.Now().UnixNano()
}

// ForSeed returns a [Rand] for the given seed. A zero seed
// means no reproducibility was requested, and yields a
// generator seeded from [NewSeed].
func ForSeed(seed int64) *SysRand {
	if seed == 0 {
		seed = NewSeed()
	}
	return NewSysRand(seed)
}
