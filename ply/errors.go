// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every [FormatError] through [errors.Is].
var ErrFormat = errors.New("invalid mesh format")

// FormatError is returned when the mesh text is not valid ASCII PLY,
// or when it is structurally inconsistent (for example a face that
// references a vertex that does not exist).
type FormatError struct {
	// Line is the 1-based line number the error refers to,
	// or 0 if it does not refer to a specific line.
	Line int

	// Msg describes the problem.
	Msg string

	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("ply: line %d: %s", e.Line, msg)
	}
	return "ply: " + msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrFormat].
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
