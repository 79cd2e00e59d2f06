// Package cmd provides the command-line interface implementation for whdextract.
//
// This package contains all the subcommand implementations for the whdextract
// CLI tool. It uses the Cobra library for command structure and Fang for
// beautiful styling.
//
// The package is organized into the following commands:
//   - root: the extraction driver itself, source tree in and mirrored
//     destination tree out
//   - scan: archive inventory without extraction
//   - seed: synthetic collection generation for testing walks and dry runs
//   - version: build and version information
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The root command doubles as the
// extraction driver so the tool keeps its original two-argument interface,
// including the legacy trailing flag spellings.
//
// The package leverages the extractor package for the batch walk and the
// amigados package for everything that touches external commands.
package cmd
