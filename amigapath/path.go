package amigapath

import "strings"

// Normalise collapses redundant separators in an AmigaDOS-style path. A run
// of slashes directly after a volume colon is dropped and doubled slashes
// collapse to one. Normalise is idempotent and never fails.
func Normalise(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); {
		c := path[i]
		switch {
		case c == ':':
			b.WriteByte(c)
			i++
			for i < len(path) && path[i] == '/' {
				i++
			}
		case c == '/' && i+1 < len(path) && path[i+1] == '/':
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// ParentDir returns the prefix of path up to and including the last path
// separator, either '/' or '\'. It returns "" when path has no separator,
// so joining OutputDir + "/" + ParentDir(rel) still lands root-level
// archives directly under the output root.
func ParentDir(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	if i < 0 {
		return ""
	}
	return path[:i+1]
}

// StripSourcePrefix removes root from the front of full. When full does not
// start with root it is returned unchanged.
func StripSourcePrefix(full, root string) string {
	return strings.TrimPrefix(full, root)
}

// TrimTrailingSlash drops a single trailing slash so configured roots can
// be joined with "/" without doubling separators. Volume roots like "WHD:"
// are left alone.
func TrimTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path[:len(path)-1]
	}
	return path
}
