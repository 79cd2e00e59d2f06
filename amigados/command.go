package amigados

import (
	"fmt"
	"strings"

	"github.com/whdtools/whdextract/amigapath"
)

// Command is one assembled decompressor invocation. Program runs with the
// Argv vector; String renders the legacy single-line form used in console
// output and logs.
type Command struct {
	Program   string
	Dialect   string
	Archive   string
	TargetOpt string
	Dest      string

	targetSlot bool
}

// BuildCommand assembles the extraction (or verification) command for one
// archive. Path arguments are normalised before insertion. Quoting happens
// only in the rendered String form; execution passes an argument vector, so
// paths with spaces need no escaping.
func BuildCommand(kind ArchiveKind, variant LzxVariant, testOnly bool, archive, destDir string) Command {
	c := Command{
		Archive: amigapath.Normalise(archive),
		Dest:    amigapath.Normalise(destDir),
	}
	switch kind {
	case KindLzx:
		c.Program = LzxTool
		if testOnly {
			c.Dialect = "-v"
		} else {
			c.Dialect = variant.ExtractArgs()
			c.TargetOpt = variant.TargetOption()
			c.targetSlot = true
		}
	default:
		c.Program = LhaTool
		if testOnly {
			c.Dialect = "t"
		} else {
			c.Dialect = "-T -M -N -m x"
		}
	}
	return c
}

// Argv returns the argument vector after the program name.
func (c Command) Argv() []string {
	args := strings.Fields(c.Dialect)
	args = append(args, c.Archive)
	if c.TargetOpt != "" {
		args = append(args, c.TargetOpt)
	}
	args = append(args, c.Dest)
	return args
}

// String renders the command the way the legacy shell dispatch composed it.
// LZX extraction keeps its target slot even when the variant has no target
// option, so an empty slot leaves a doubled space.
func (c Command) String() string {
	if c.targetSlot {
		return fmt.Sprintf("%s %s %q %s %q", c.Program, c.Dialect, c.Archive, c.TargetOpt, c.Dest)
	}
	return fmt.Sprintf("%s %s %q %q", c.Program, c.Dialect, c.Archive, c.Dest)
}
