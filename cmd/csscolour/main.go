// csscolour - CSS colour conversion and contrast tooling
//
// csscolour converts colours between hexadecimal and functional CSS
// notation, reports WCAG luminance and contrast figures, and derives
// darkened, lightened and faded variants.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/csscolour/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
