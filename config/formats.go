// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
)

// Formats are the supported point output formats.
type Formats string

const (
	// Particle writes one particle command line per point.
	Particle Formats = "particle"

	// JSONL writes one JSON object per point and line.
	JSONL Formats = "jsonl"

	// PNG renders an orthographic preview image.
	PNG Formats = "png"
)

// FormatsValues returns all of the output formats.
func FormatsValues() []Formats {
	return []Formats{Particle, JSONL, PNG}
}

// IsValid returns whether the value is a known format.
func (f Formats) IsValid() bool {
	switch f {
	case Particle, JSONL, PNG:
		return true
	}
	return false
}

// String implements [fmt.Stringer] and pflag.Value.
func (f Formats) String() string {
	return string(f)
}

// Set implements pflag.Value.
func (f *Formats) Set(s string) error {
	return f.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (f *Formats) Type() string {
	return "format"
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Formats) UnmarshalText(text []byte) error {
	v := Formats(strings.ToLower(string(text)))
	if !v.IsValid() {
		return fmt.Errorf("%q is not a valid output format; expected particle, jsonl or png", string(text))
	}
	*f = v
	return nil
}
