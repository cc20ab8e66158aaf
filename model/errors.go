// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"io/fs"
	"strings"
)

// NotFoundError is returned when a named model does not exist.
// It matches [fs.ErrNotExist] through errors.Is.
type NotFoundError struct {
	// Name is the requested model name.
	Name string

	// Available are the names of the models that do exist.
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("model %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// AvailableList returns the available model names as a user-facing
// multi-line message.
func (e *NotFoundError) AvailableList() string {
	if len(e.Available) == 0 {
		return "No models found."
	}
	return "Available models:\n- " + strings.Join(e.Available, "\n- ")
}

// InvalidColorError is returned for a color that is not a 6 digit hex string.
type InvalidColorError struct {
	Color string
	Err   error
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q: expected 6 hex digits like #FF8800", e.Color)
}

func (e *InvalidColorError) Unwrap() error {
	return e.Err
}

// InvalidConfigError is returned for a request field that is out of bounds.
type InvalidConfigError struct {
	// Field is the name of the request field.
	Field string

	// Value is the rejected value.
	Value any

	// Msg describes the accepted values.
	Msg string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Msg)
}
