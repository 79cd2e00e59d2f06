// Package diskspace reports whether a volume has enough free space for
// more extraction output.
//
// Check is advisory and three-valued: a query can fail outright on network
// mounts and exotic filesystems, and callers may want to treat "cannot
// tell" differently from "definitely full".
package diskspace
