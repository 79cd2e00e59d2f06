package cmd

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/whdtools/whdextract/amigados"
)

// NewScanCmd creates and returns the scan subcommand for the whdextract CLI.
// It provides archive counting functionality for directory trees.
func NewScanCmd() *cobra.Command {
	var (
		path         string
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "scan [PATH]",
		Short: "Count archives in a directory tree",
		Long: `Count the LHA and LZX archives in a directory tree.

This is a utility command that recursively walks through a directory and
classifies every file the way the extraction run would, without invoking
any decompressor. Useful for sizing a batch before running it.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				path = args[0]
			}
			runScan(path, showProgress)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to scan for archives")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runScan(path string, showProgress bool) {
	var dirs, lha, lzx, other int
	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs++
			return nil
		}
		switch kind, ok := amigados.ClassifyName(d.Name()); {
		case !ok:
			other++
		case kind == amigados.KindLha:
			lha++
		default:
			lzx++
		}
		files := lha + lzx + other
		if showProgress && files%10000 == 0 && files > 0 {
			fmt.Printf("Progress: %d files scanned\n", files)
		}
		return nil
	})

	if err != nil {
		fmt.Printf("Error scanning archives: %v\n", err)
		return
	}

	fmt.Printf("Directories:  %d\n", dirs)
	fmt.Printf("LHA archives: %d\n", lha)
	fmt.Printf("LZX archives: %d\n", lzx)
	fmt.Printf("Other files:  %d\n", other)
}
