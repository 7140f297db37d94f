// Package sound plays the timer's audible cue.
package sound

import (
	"io"
	"os"
)

// Bell rings the terminal bell on w. Write errors are ignored: a missing
// cue must never interrupt the timer.
func Bell(w io.Writer) {
	if w == nil {
		return
	}
	_, _ = io.WriteString(w, "\a")
}

// Cue returns a no-argument player bound to w, falling back to stdout.
func Cue(w io.Writer) func() {
	if w == nil {
		w = os.Stdout
	}
	return func() { Bell(w) }
}
