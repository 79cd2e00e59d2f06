// Package amigapath manipulates AmigaDOS-style path strings.
//
// AmigaDOS paths name a volume with a trailing colon ("WHD:") and separate
// directories with forward slashes. A volume root is addressed by the colon
// alone, so "WHD:Games" is the canonical spelling and "WHD:/Games" is a
// composition artifact. The functions here normalise composed paths, split
// off parent prefixes, and strip configured root prefixes. They are pure
// string operations; nothing in this package touches the filesystem.
package amigapath
