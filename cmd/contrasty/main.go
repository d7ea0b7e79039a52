// Contrasty - perceptual colour contrast, forwards and backwards
//
// Contrasty measures colour contrast under several competing metrics and
// finds lightness-adjusted colour variants that reach a target contrast.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrasty/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
