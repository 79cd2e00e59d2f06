package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/whdtools/whdextract/amigados"
	"github.com/whdtools/whdextract/amigapath"
	"github.com/whdtools/whdextract/diskspace"
	"github.com/whdtools/whdextract/extractor"
	"github.com/whdtools/whdextract/version"
)

// Legacy flag spellings accepted as trailing arguments. The original tool
// took these after the two directory paths and collections still ship
// wrapper scripts that pass them that way.
const (
	legacySpaceCheckFlag = "-enablespacecheck"
	legacyTestOnlyFlag   = "-testarchivesonly"
)

var (
	bold      = color.New(color.Bold)
	boldGreen = color.New(color.Bold, color.FgGreen)
	green     = color.New(color.FgGreen)
	italic    = color.New(color.Italic)
)

// NewRootCmd creates and returns the root cobra command for the whdextract
// CLI. The root command is the extraction driver; the utility subcommands
// hang off it.
func NewRootCmd() *cobra.Command {
	var (
		enableSpaceCheck bool
		testArchivesOnly bool
	)

	rootCmd := &cobra.Command{
		Use:   "whdextract SOURCE_DIR OUTPUT_DIR",
		Short: "Extract nested LHA and LZX archives into a mirrored directory tree",
		Long: `whdextract walks a directory tree for LHA and LZX archives, extracts each
one with the matching external decompressor, and recreates the source
hierarchy under the output directory. Reruns clear AmigaDOS protection
bits before overwriting an earlier extraction.

SOURCE_DIR is the root of the archive collection.
OUTPUT_DIR is the root the extracted trees are mirrored under.

The legacy flags -enablespacecheck and -testarchivesonly are also accepted
as trailing arguments after the two paths.`,
		Args:    cobra.MinimumNArgs(2),
		Version: version.GetFullVersion(),
		Run: func(cmd *cobra.Command, args []string) {
			runExtract(args, enableSpaceCheck, testArchivesOnly)
		},
	}

	// Trailing legacy flag tokens must reach Run as positionals.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().BoolVar(&enableSpaceCheck, "enablespacecheck", false,
		"Require 20MB free on the output volume before each extraction")
	rootCmd.Flags().BoolVar(&testArchivesOnly, "testarchivesonly", false,
		"Verify archives with the decompressor's test mode instead of extracting")

	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	scanCmd := NewScanCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	scanCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// NewVersionCmd creates and returns the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion("whdextract")
		},
	}
}

// applyLegacyFlags folds trailing legacy flag tokens into the option
// values. Unrecognised extras are ignored the way the original parser
// ignored them.
func applyLegacyFlags(extras []string, spaceCheck, testOnly *bool) {
	for _, arg := range extras {
		switch arg {
		case legacySpaceCheckFlag:
			*spaceCheck = true
		case legacyTestOnlyFlag:
			*testOnly = true
		}
	}
}

func runExtract(args []string, spaceCheck, testOnly bool) {
	applyLegacyFlags(args[2:], &spaceCheck, &testOnly)

	printBanner()

	runner := amigados.System{}
	tools := amigados.Probe(runner)
	if !tools.HasLha {
		fmt.Println("The lha command does not exist. As this program requires it to extract")
		fmt.Println("the archives, it will now quit. Please install the latest version of")
		fmt.Println("lha.run from www.aminet.org.")
		return
	}
	reportLzxTool(tools)

	source := amigapath.TrimTrailingSlash(args[0])
	output := amigapath.TrimTrailingSlash(args[1])

	fmt.Printf("%s %s\n", bold.Sprint("Scanning directory:    "), source)
	fmt.Printf("%s %s\n", bold.Sprint("Extracting archives to:"), output)

	if !dirExists(source) {
		fmt.Printf("\nUnable to find the source folder %s\n\n", source)
		return
	}
	if !dirExists(output) {
		fmt.Printf("\nUnable to find the target folder %s\n\n", output)
		return
	}
	if pathsOverlap(source, output) {
		log.Printf("Warning: source %s and output %s overlap, extraction output will be rescanned as input", source, output)
	}

	if spaceCheck {
		if outcome, err := diskspace.Check(output, extractor.MinFreeMB); outcome != diskspace.Sufficient {
			if err != nil {
				log.Printf("Free-space query failed: %v", err)
			}
			fmt.Printf("\n%s Not enough space on the target drive or cannot check space.\n", bold.Sprint("Error:"))
			fmt.Printf("20MB minimum checked for. To disable this check, do not launch the\nprogram with the %s flag.\n\n", italic.Sprint(legacySpaceCheckFlag))
			return
		}
	}

	cfg := extractor.Config{
		SourceDir:  source,
		OutputDir:  output,
		SpaceCheck: spaceCheck,
		TestOnly:   testOnly,
	}
	batch := extractor.New(cfg, tools, runner, nil)

	// Stop cleanly on Ctrl-C: finish the in-flight archive, then summarise.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		log.Println("Interrupt received, stopping after the current archive...")
		batch.RequestAbort()
	}()

	start := time.Now()
	batch.Walk()
	printSummary(batch, tools, time.Since(start))
}

// printBanner writes the startup banner after argument validation passed.
func printBanner() {
	fmt.Println()
	boldGreen.Printf("WHDArchiveExtractor V%s\n", version.GetVersion())
	green.Println("This program is designed to automatically locate LHA and LZX archive files")
	green.Println("within nested subdirectories, extract their contents to a specified")
	green.Println("destination, and preserve the original directory hierarchy in which the")
	green.Println("archives were located.")
	fmt.Println()
}

// reportLzxTool explains what the probe found out about unlzx. A missing
// unlzx is not fatal; LZX archives are counted and skipped.
func reportLzxTool(tools amigados.Tools) {
	if !tools.HasLzx {
		fmt.Println("The unlzx command does not exist. There are a few LZX compressed archives")
		fmt.Println("for WHDLoad. This program will continue and ignore these archives until")
		fmt.Println("UnLZX is installed. Please install the latest version of lzx121r1.lha")
		fmt.Println("from www.aminet.org.")
		return
	}
	switch tools.LzxVariant {
	case amigados.VariantUnLzx216:
		fmt.Println("UnLZX version recognised as UnLZX 2.16.")
	case amigados.VariantLzx121:
		fmt.Println("UnLZX version recognised as LZX 1.21.")
	default:
		fmt.Printf("Unknown UnLZX version, defaulting extraction command to%s.\n", tools.LzxVariant.ExtractArgs())
	}
}

// printSummary writes the run statistics, the error list, and the trailer.
func printSummary(batch *extractor.Batch, tools amigados.Tools, elapsed time.Duration) {
	counts := batch.Counters()
	fmt.Printf("Scanned %s directories and found %s archives.\n",
		bold.Sprint(counts.Directories), bold.Sprint(counts.LhaArchives+counts.LzxArchives))
	fmt.Printf("Archives composed of %s LHA and %s LZX archives.\n",
		bold.Sprint(counts.LhaArchives), bold.Sprint(counts.LzxArchives))
	if counts.LzxArchives > 0 && !tools.HasLzx {
		fmt.Printf("UnLZX is not installed. %s LZX archives were found but not expanded.\n",
			bold.Sprint(counts.LzxArchives))
	}

	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	seconds := int(elapsed.Seconds()) % 60
	fmt.Printf("\nElapsed time: %s\n", bold.Sprintf("%d:%02d:%02d", hours, minutes, seconds))

	batch.Errors().Print(os.Stdout)

	fmt.Printf("\nWHDArchiveExtractor V%s\n\n", version.GetVersion())
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// pathsOverlap reports whether one path contains the other or they are the
// same path. Extracting into the tree being scanned feeds output back into
// the walk.
func pathsOverlap(path1, path2 string) bool {
	p1 := filepath.Clean(path1)
	p2 := filepath.Clean(path2)
	if p1 == p2 {
		return true
	}
	sep := string(os.PathSeparator)
	return strings.HasPrefix(p1, p2+sep) || strings.HasPrefix(p2, p1+sep)
}
