package amigados

import "errors"

// Sentinel errors for package amigados.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// ErrNoArchiveDir reports a listing with no directory entries, which
	// is what archives that extract files straight into the target produce.
	ErrNoArchiveDir = errors.New("archive listing contains no directory entries")

	// ErrNoVersionLine reports a version query that produced no output.
	ErrNoVersionLine = errors.New("version command produced no output")
)
