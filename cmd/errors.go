// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/dexflex/dexmodel/base/errors"
	"github.com/dexflex/dexmodel/model"
	"github.com/dexflex/dexmodel/ply"
)

// Message returns the user-facing message for an error
// returned by a command.
func Message(err error) string {
	var nf *model.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("Model %q not found.\n%s", nf.Name, nf.AvailableList())
	}
	var fe *ply.FormatError
	if errors.As(err, &fe) {
		return "Error loading model: " + fe.Error()
	}
	var ce *model.InvalidColorError
	if errors.As(err, &ce) {
		return fmt.Sprintf("Invalid color %q. Use a hex color like #FF8800.", ce.Color)
	}
	var ie *model.InvalidConfigError
	if errors.As(err, &ie) {
		return fmt.Sprintf("Invalid %s %v: %s.", ie.Field, ie.Value, ie.Msg)
	}
	return "Error: " + err.Error()
}

// Run executes the root command with the given arguments,
// printing any error message to errOut, and returns the
// process exit code.
func Run(args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(errOut, Message(err))
		return 1
	}
	return 0
}
