// Package version provides version information and build metadata for
// whdextract.
//
// This package handles version reporting for the whdextract binary,
// supporting both compile-time version injection via build flags and
// runtime version detection using Go's build info, so releases, CI builds,
// and plain go-build checkouts all report something sensible.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Release defaults baked into the source
//
// The package provides multiple version formats:
//   - GetVersion(): Simple version string
//   - GetFullVersion(): Formatted version with commit and build date
//   - GetInfo(): Complete version information as a struct
//   - PrintVersion(): Human-readable version output
//   - AmigaCookie(): The classic $VER string, so the AmigaDOS Version
//     command can identify a binary that ends up on real hardware
//
// Build Integration:
// Release builds set version information at build time using:
//
//	-ldflags "-X github.com/whdtools/whdextract/version.Version=1.3.0 ..."
package version
