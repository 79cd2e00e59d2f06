package extractor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/whdtools/whdextract/amigados"
	"github.com/whdtools/whdextract/amigapath"
	"github.com/whdtools/whdextract/diskspace"
)

// corruptExitCode is the decompressor exit code for a damaged archive.
const corruptExitCode = 10

var (
	emphasis = color.New(color.Bold)
	italic   = color.New(color.Italic)
)

// Counters are the walk statistics reported by the final summary.
type Counters struct {
	Directories int
	LhaArchives int
	LzxArchives int
	Attempted   int
}

// Batch is the long-lived state for one extraction run. The driver owns
// it; only the walker mutates counters and the error log.
type Batch struct {
	cfg    Config
	tools  amigados.Tools
	runner amigados.Runner

	counts Counters
	errs   ErrorLog
	abort  atomic.Bool

	out        io.Writer
	checkSpace func(path string, minMegabytes int64) (diskspace.Outcome, error)
}

// New builds a Batch. Console output goes to out; pass nil for os.Stdout.
func New(cfg Config, tools amigados.Tools, runner amigados.Runner, out io.Writer) *Batch {
	if out == nil {
		out = os.Stdout
	}
	return &Batch{
		cfg:        cfg,
		tools:      tools,
		runner:     runner,
		out:        out,
		checkSpace: diskspace.Check,
	}
}

// RequestAbort stops the batch after the in-flight archive. Safe to call
// from a signal handler goroutine.
func (b *Batch) RequestAbort() { b.abort.Store(true) }

// Aborted reports whether the batch was stopped early.
func (b *Batch) Aborted() bool { return b.abort.Load() }

// Counters returns the walk statistics collected so far.
func (b *Batch) Counters() Counters { return b.counts }

// Errors returns the batch error log.
func (b *Batch) Errors() *ErrorLog { return &b.errs }

// Walk traverses the source tree depth-first and extracts every archive it
// classifies. Failures are recorded in the error log; Walk itself never
// fails. An unreadable source root aborts the batch with a logged error.
func (b *Batch) Walk() {
	b.walkDir(b.cfg.SourceDir, true)
}

func (b *Batch) walkDir(dir string, isRoot bool) {
	if b.abort.Load() {
		return
	}
	fmt.Fprintf(b.out, "Scanning directory: %s\n", dir)
	b.counts.Directories++

	entries, err := os.ReadDir(dir)
	if err != nil {
		if isRoot {
			b.errs.Append(fmt.Sprintf("Unable to read the source folder %s", dir))
			b.abort.Store(true)
			return
		}
		fmt.Fprintf(b.out, "Unable to scan directory %s: %v\n", dir, err)
		return
	}

	for _, entry := range entries {
		if b.abort.Load() {
			return
		}
		name := entry.Name()
		full := amigapath.Normalise(dir + "/" + name)
		if entry.IsDir() {
			b.walkDir(full, false)
			continue
		}
		kind, ok := amigados.ClassifyName(name)
		if !ok {
			continue
		}
		b.processArchive(full, name, kind)
	}
}

// processArchive runs one archive through count, destination mapping,
// space gate, protection prep, and the decompressor itself.
func (b *Batch) processArchive(path, name string, kind amigados.ArchiveKind) {
	switch kind {
	case amigados.KindLha:
		b.counts.LhaArchives++
	case amigados.KindLzx:
		b.counts.LzxArchives++
		if !b.tools.HasLzx {
			// Counted so the summary can report how many were skipped.
			return
		}
	}

	rel := amigapath.StripSourcePrefix(path, b.cfg.SourceDir)
	destDir := amigapath.Normalise(b.cfg.OutputDir + "/" + amigapath.ParentDir(rel))
	fmt.Fprintf(b.out, "Extracting %s to %s\n", emphasis.Sprint(name), emphasis.Sprint(destDir))

	if b.cfg.SpaceCheck && !b.gateOnSpace() {
		return
	}
	if kind == amigados.KindLha && !b.cfg.TestOnly {
		b.prepareProtection(path, destDir)
	}

	b.counts.Attempted++
	cmd := amigados.BuildCommand(kind, b.tools.LzxVariant, b.cfg.TestOnly, path, destDir)
	code, err := b.runner.Run(cmd.Program, cmd.Argv(), nil)
	b.classify(path, code, err)

	if b.errs.Full() {
		fmt.Fprintf(b.out, "Maximum number of errors reached. Aborting.\n")
		b.abort.Store(true)
	}
}

// gateOnSpace enforces the free-space floor before an extraction. Any
// outcome other than Sufficient, including an unanswerable query, aborts
// the batch.
func (b *Batch) gateOnSpace() bool {
	outcome, err := b.checkSpace(b.cfg.OutputDir, MinFreeMB)
	if outcome == diskspace.Sufficient {
		return true
	}
	if err != nil {
		fmt.Fprintf(b.out, "%s Not enough space on the target drive or cannot check space: %v\n", emphasis.Sprint("Error:"), err)
	} else {
		fmt.Fprintf(b.out, "%s Not enough space on the target drive or cannot check space.\n", emphasis.Sprint("Error:"))
	}
	fmt.Fprintf(b.out, "20MB minimum checked for. To disable this check, launch the program\nwithout the %s flag.\n", italic.Sprint("-enablespacecheck"))
	b.errs.Append("Not enough space on the target drive or cannot check space.")
	b.abort.Store(true)
	return false
}

// prepareProtection clears protection bits under the directory this
// archive will extract into, when that directory survives from an earlier
// run. Archives whose listing names no directory have nothing to prepare.
func (b *Batch) prepareProtection(archive, destDir string) {
	first, err := amigados.FirstArchiveDir(b.runner, archive)
	if err != nil {
		if errors.Is(err, amigados.ErrNoArchiveDir) {
			log.Printf("No directory entries in the listing for %s, skipping protection prep", archive)
		} else {
			fmt.Fprintf(b.out, "Unable to get the file path from the LHA output for file %s.\n", archive)
		}
		return
	}
	candidate := amigapath.Normalise(destDir + "/" + first)
	info, err := os.Stat(candidate)
	if err != nil || !info.IsDir() {
		return
	}
	fmt.Fprintf(b.out, "Prepping any protected files for potential replacement...\n")
	if err := amigados.ClearProtection(b.runner, candidate); err != nil {
		log.Printf("Protection prep under %s failed: %v", candidate, err)
	}
}

// classify translates one decompressor result into console and log output.
func (b *Batch) classify(archive string, code int, err error) {
	if err == nil && code == 0 {
		return
	}
	if err == nil && code == corruptExitCode {
		fmt.Fprintf(b.out, "\n%s Corrupt archive %s\n", emphasis.Sprint("Error:"), archive)
		b.errs.Append(archive + " is corrupt")
		return
	}
	fmt.Fprintf(b.out, "\n%s Failed to extract %s.\nPlease check the archive is not damaged, and there is enough space in the\ntarget directory.\n", emphasis.Sprint("Error:"), archive)
	b.errs.Append(archive + " failed to extract. Unknown error")
}
