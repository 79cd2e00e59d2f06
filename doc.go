// Package main provides the whdextract command-line interface.
//
// whdextract is a batch extraction driver for WHDLoad-style archive
// collections. It walks a source tree for LHA and LZX archives, drives the
// external lha and unlzx decompressors, and mirrors the source hierarchy
// under a destination tree. Reruns are safe: AmigaDOS protection bits left
// by an earlier pass are cleared before an archive is extracted again.
//
// Invoked with two directory arguments, the root command runs the
// extraction itself. The main binary also supports utility subcommands:
//   - scan: Count archives in a directory tree without extracting
//   - seed: Generate a synthetic archive collection for testing
//   - version: Print build and version information
package main
