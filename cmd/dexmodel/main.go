// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dexmodel displays PLY models as colored points,
// written as particle commands, JSON lines or a png preview.
package main

import (
	"os"

	"github.com/dexflex/dexmodel/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
