// Package extractor implements the batch walk that finds LHA and LZX
// archives under a source tree and extracts each one into a destination
// tree mirroring the source layout.
//
// A Batch owns all run-wide state: configuration, probed tool availability,
// the subprocess Runner, counters, the bounded error log, and the abort
// flag. The walk is single-threaded and synchronous; one archive finishes
// (or fails) before the next directory entry is considered. Abort is
// cooperative: the flag is checked before every entry, so an interrupt or
// a saturated error log stops the batch after the in-flight archive.
//
// Reruns are safe. Before re-extracting an LHA archive whose first
// directory already exists in the destination, the walker clears AmigaDOS
// protection bits beneath that directory so the decompressor may overwrite
// files from the earlier run.
package extractor
