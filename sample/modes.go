// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"fmt"
	"strings"
)

// Modes are the ways a mesh can be turned into points.
type Modes int32

const (
	// Points emits one point per vertex.
	Points Modes = iota

	// Wireframe emits points along every face edge.
	Wireframe

	// Solid emits random points inside every face.
	Solid

	// ModesN is the number of modes.
	ModesN
)

var modeNames = [ModesN]string{"points", "wireframe", "solid"}

// ModesValues returns all possible values for the type Modes.
func ModesValues() []Modes {
	return []Modes{Points, Wireframe, Solid}
}

// String returns the lower-case name of the mode.
func (m Modes) String() string {
	if m < 0 || m >= ModesN {
		return fmt.Sprintf("Modes(%d)", int32(m))
	}
	return modeNames[m]
}

// SetString sets the mode from its name, case-insensitively.
func (m *Modes) SetString(s string) error {
	for i, nm := range modeNames {
		if strings.EqualFold(nm, s) {
			*m = Modes(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Modes (must be one of points, wireframe, solid)", s)
}

// IsValid returns whether the value is a valid option for type Modes.
func (m Modes) IsValid() bool {
	return m >= 0 && m < ModesN
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Modes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Modes) UnmarshalText(text []byte) error {
	return m.SetString(string(text))
}
