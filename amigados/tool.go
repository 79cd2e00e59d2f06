package amigados

import "strings"

// External command names, resolved through the host's search path.
const (
	LhaTool     = "lha"
	LzxTool     = "unlzx"
	protectTool = "protect"
	versionTool = "version"
)

// Version lines reported by the two known unlzx builds.
const (
	versionLineUnLzx216 = "UnLZX 2.16"
	versionLineLzx121   = "LZX 1.21"
)

// ArchiveKind identifies which decompressor handles a file.
type ArchiveKind int

const (
	KindLha ArchiveKind = iota + 1
	KindLzx
)

func (k ArchiveKind) String() string {
	switch k {
	case KindLha:
		return "LHA"
	case KindLzx:
		return "LZX"
	}
	return "unknown"
}

// ClassifyName reports the archive kind a filename denotes, matching the
// final four bytes case-insensitively. ok is false for names shorter than
// four bytes and for non-archive suffixes.
func ClassifyName(name string) (kind ArchiveKind, ok bool) {
	if len(name) < 4 {
		return 0, false
	}
	switch strings.ToLower(name[len(name)-4:]) {
	case ".lha":
		return KindLha, true
	case ".lzx":
		return KindLzx, true
	}
	return 0, false
}

// LzxVariant distinguishes the incompatible unlzx releases by the first
// line of their version report.
type LzxVariant int

const (
	VariantUnknown LzxVariant = iota
	VariantUnLzx216
	VariantLzx121
)

func (v LzxVariant) String() string {
	switch v {
	case VariantUnLzx216:
		return versionLineUnLzx216
	case VariantLzx121:
		return versionLineLzx121
	}
	return "unknown"
}

// ExtractArgs returns the variant's extraction tokens in legacy spelling.
// The Unknown dialect is the permissive " e" form old unlzx ports accept.
func (v LzxVariant) ExtractArgs() string {
	switch v {
	case VariantUnLzx216:
		return "-x"
	case VariantLzx121:
		return "-q -x e"
	}
	return " e"
}

// TargetOption returns the flag that must prefix the output directory, or
// "" for variants that take the directory as a bare trailing argument.
func (v LzxVariant) TargetOption() string {
	if v == VariantUnLzx216 {
		return "-o"
	}
	return ""
}

// MatchVariant maps a trimmed version line onto the variant it names.
// Anything unrecognised is VariantUnknown.
func MatchVariant(line string) LzxVariant {
	switch line {
	case versionLineUnLzx216:
		return VariantUnLzx216
	case versionLineLzx121:
		return VariantLzx121
	}
	return VariantUnknown
}

// Tools records which decompressors a probe found. It is established once
// at startup and read-only afterwards.
type Tools struct {
	HasLha     bool
	HasLzx     bool
	LzxVariant LzxVariant
}

// Probe looks up both decompressors on the command path and, when unlzx is
// present, identifies its build through the host version command. A failed
// version query leaves the variant Unknown rather than failing the probe.
func Probe(r Runner) Tools {
	var t Tools
	if _, err := r.LookPath(LhaTool); err == nil {
		t.HasLha = true
	}
	path, err := r.LookPath(LzxTool)
	if err != nil {
		return t
	}
	t.HasLzx = true
	line, err := toolVersionLine(r, path)
	if err != nil {
		return t
	}
	t.LzxVariant = MatchVariant(line)
	return t
}
