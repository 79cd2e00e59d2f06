//go:build linux || darwin || freebsd

package diskspace

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Check reports whether path's volume has at least minMegabytes free for
// an unprivileged writer. Free space is computed in a signed 64-bit
// quantity; a negative product means the volume is larger than the counter
// expresses and is treated as Sufficient.
func Check(path string, minMegabytes int64) (Outcome, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Unknown, fmt.Errorf("statfs %s: %w", path, err)
	}
	free := int64(st.Bavail) * int64(st.Bsize)
	if free < 0 {
		return Sufficient, nil
	}
	if free < minMegabytes*1024*1024 {
		return Insufficient, nil
	}
	return Sufficient, nil
}
