package cli

import (
	"os"

	"golang.org/x/term"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
// Previews are plain-text suppressed when output is piped or redirected.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
