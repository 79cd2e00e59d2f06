// Package amigados drives the external AmigaDOS commands the extractor
// depends on: the lha and unlzx decompressors, the protect command for
// clearing protection bits, and the version command for identifying which
// unlzx build is installed.
//
// The two LZX decompressors in circulation disagree on how to spell
// "extract" and on how the output directory is named, so Probe maps the
// reported version line onto an argument dialect once at startup. All
// subprocess work funnels through the Runner interface; tests substitute a
// recording fake so no external binaries are needed.
package amigados
