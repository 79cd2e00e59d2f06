package extractor

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Bounds for the error log. A batch that produces MaxErrors failures is
// assumed to have a systemic cause (full volume, wrong tool) and aborts
// instead of grinding through thousands of doomed archives.
const (
	MaxErrors     = 40
	MaxMessageLen = 255
)

var errorLabel = color.New(color.Bold)

// ErrorLog is the append-only bounded error buffer for one batch run.
type ErrorLog struct {
	entries []string
}

// Append records one error message, truncated to MaxMessageLen bytes.
// Appends beyond MaxErrors are dropped; the walker aborts once Full.
func (l *ErrorLog) Append(msg string) {
	if len(l.entries) >= MaxErrors {
		return
	}
	if len(msg) > MaxMessageLen {
		msg = msg[:MaxMessageLen]
	}
	l.entries = append(l.entries, msg)
}

// Len returns the number of recorded errors.
func (l *ErrorLog) Len() int { return len(l.entries) }

// Full reports whether the log has reached its bound.
func (l *ErrorLog) Full() bool { return len(l.entries) >= MaxErrors }

// Entries returns the recorded messages in append order.
func (l *ErrorLog) Entries() []string { return l.entries }

// Print writes the numbered error list, or a no-errors line when the run
// was clean.
func (l *ErrorLog) Print(w io.Writer) {
	if len(l.entries) == 0 {
		fmt.Fprintf(w, "\nNo errors encountered.\n")
		return
	}
	fmt.Fprintf(w, "\n%s\n", errorLabel.Sprint("Errors encountered during execution:"))
	for i, msg := range l.entries {
		fmt.Fprintf(w, "%s %d: %s\n", errorLabel.Sprint("Error:"), i+1, msg)
	}
}
