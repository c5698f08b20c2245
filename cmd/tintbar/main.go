// Tintbar - distinct, accessible colour pairs for workspace title bars
//
// Tintbar generates sets of visually distinct colour pairs and applies them
// to VS Code workspaces so every project gets a recognisable title bar.
package main

import (
	"github.com/jmylchreest/tintbar/internal/cli"
)

func main() {
	cli.Execute()
}
