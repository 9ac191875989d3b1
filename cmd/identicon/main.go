// identicon - deterministic avatar generator
//
// identicon derives a symmetric 5x5 pixel image from any string, so the same
// input always yields the same avatar.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/identicon/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
