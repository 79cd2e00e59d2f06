package extractor

// MinFreeMB is the free-space floor checked before each extraction when
// the disk guard is enabled.
const MinFreeMB = 20

// Config carries the CLI decisions for one batch run.
type Config struct {
	// SourceDir and OutputDir are the configured roots, trailing slashes
	// already trimmed.
	SourceDir string
	OutputDir string

	// SpaceCheck enables the free-space gate before each extraction.
	SpaceCheck bool

	// TestOnly swaps extraction for the decompressor's verify mode.
	TestOnly bool
}
