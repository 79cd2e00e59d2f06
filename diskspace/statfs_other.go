//go:build !linux && !darwin && !freebsd

package diskspace

import "errors"

// Check reports Unknown on platforms without a wired statfs call. Callers
// apply their own policy to Unknown.
func Check(path string, minMegabytes int64) (Outcome, error) {
	return Unknown, errors.New("free-space query not supported on this platform")
}
