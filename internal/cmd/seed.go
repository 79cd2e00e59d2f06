package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Categories and shelf letters for the generated collection layout.
var (
	seedCategories = []string{"Games", "Demos", "Apps", "Magazines"}
	seedLetters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewSeedCmd creates and returns the seed subcommand for the whdextract CLI.
// It generates a synthetic archive collection with the usual
// Category/Letter shelf layout.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic archive collection",
		Long: `Generate placeholder archive files arranged in a Category/Letter tree.

Creates files like Games/A/A_1b9d6bcd.lha with randomized placement and a
small share of LZX archives and plain files mixed in. The files contain a
single UUID line and are NOT valid archives; they exist to exercise scans
and walks without gigabytes of real data.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, fileCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d placeholder archives in %s\n", fileCount, outputPath)
	}

	// Create output directory
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	// Generate pool of 50 UUIDs reused for names and content
	uuidPool := make([]string, 50)
	for i := range uuidPool {
		uuidPool[i] = uuid.New().String()
	}

	filesCreated := 0
	dirFileCounts := make(map[string]int)

	for filesCreated < fileCount {
		category := seedCategories[randomInt(len(seedCategories))]
		letter := string(seedLetters[randomInt(len(seedLetters))])

		// Most archives sit on a Category/Letter shelf; a few land
		// higher up, which real collections also have.
		var dirPath string
		switch placement := randomInt(100); {
		case placement < 5:
			dirPath = outputPath
		case placement < 15:
			dirPath = filepath.Join(outputPath, category)
		default:
			dirPath = filepath.Join(outputPath, category, letter)
		}

		// Check if directory has too many files
		if dirFileCounts[dirPath] >= 1000 {
			continue
		}

		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		// Mostly LHA with a small share of LZX and plain files
		ext := ".lha"
		switch extRand := randomInt(10); {
		case extRand < 2:
			ext = ".lzx"
		case extRand < 3:
			ext = ".txt"
		}
		title := uuidPool[randomInt(len(uuidPool))][:8]
		filename := fmt.Sprintf("%s_%s%s", letter, title, ext)
		filePath := filepath.Join(dirPath, filename)

		// Skip if file already exists
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		content := uuidPool[randomInt(len(uuidPool))] + "\n"
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		dirFileCounts[dirPath]++
		filesCreated++

		if verbose && filesCreated%1000 == 0 {
			fmt.Printf("Created %d/%d files...\n", filesCreated, fileCount)
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d files\n", filesCreated)
		fmt.Printf("Files distributed across %d directories\n", len(dirFileCounts))
	}
}

// randomInt returns a uniform int in [0, n).
func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
