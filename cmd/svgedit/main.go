// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgedit loads a polyline/path SVG drawing, applies an edit
// to it, and saves the result.
package main

import (
	"os"

	"cogentcore.org/svgedit/logx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
