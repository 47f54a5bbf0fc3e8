// Chromalint - design-system screenshot verifier
//
// Chromalint analyses UI screenshots against the design-system palette
// and reports palette, theme, and WCAG contrast compliance.
//
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/chromalint/chromalint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
