package amigados

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/whdtools/whdextract/amigapath"
)

// Runner spawns external commands. stdout selects where the child's output
// goes; nil inherits the console. The int result is the child's exit code.
// A non-zero exit code is not an error: callers decide what codes mean.
type Runner interface {
	LookPath(name string) (string, error)
	Run(name string, args []string, stdout io.Writer) (int, error)
}

// System is the Runner backed by the host's real command path.
type System struct{}

func (System) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (System) Run(name string, args []string, stdout io.Writer) (int, error) {
	cmd := exec.Command(name, args...)
	if stdout == nil {
		stdout = os.Stdout
	}
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("run %s: %w", name, err)
	}
	return 0, nil
}

// FirstArchiveDir lists an LHA archive with "lha vq" and returns the first
// directory name the extraction will create: the prefix before the first
// slash in the listing. ErrNoArchiveDir reports a listing with no slash at
// all, which is what single-file archives produce.
func FirstArchiveDir(r Runner, archive string) (string, error) {
	listing, err := os.CreateTemp("", "whdextract-listing-*.txt")
	if err != nil {
		return "", fmt.Errorf("create listing file: %w", err)
	}
	defer os.Remove(listing.Name())
	defer listing.Close()

	if _, err := r.Run(LhaTool, []string{"vq", archive}, listing); err != nil {
		return "", fmt.Errorf("list %s: %w", archive, err)
	}
	if _, err := listing.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind listing file: %w", err)
	}

	scanner := bufio.NewScanner(listing)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '/'); i >= 0 {
			return line[:i], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read listing file: %w", err)
	}
	return "", ErrNoArchiveDir
}

// ClearProtection strips the AmigaDOS protection bits below dir so a rerun
// may overwrite files left by an earlier extraction. Command output is
// discarded, matching the >NIL: redirect of the manual procedure. The
// protect command's own exit code is ignored; only a failure to spawn is
// reported.
func ClearProtection(r Runner, dir string) error {
	pattern := amigapath.Normalise(dir + "/#?")
	if _, err := r.Run(protectTool, []string{pattern, "ALL", "rwed"}, io.Discard); err != nil {
		return fmt.Errorf("clear protection under %s: %w", dir, err)
	}
	return nil
}

// toolVersionLine runs the host version command against an executable and
// returns the first stdout line, trailing whitespace trimmed.
func toolVersionLine(r Runner, toolPath string) (string, error) {
	out, err := os.CreateTemp("", "whdextract-version-*.txt")
	if err != nil {
		return "", fmt.Errorf("create version file: %w", err)
	}
	defer os.Remove(out.Name())
	defer out.Close()

	if _, err := r.Run(versionTool, []string{toolPath}, out); err != nil {
		return "", fmt.Errorf("query version of %s: %w", toolPath, err)
	}
	if _, err := out.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind version file: %w", err)
	}

	scanner := bufio.NewScanner(out)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read version file: %w", err)
		}
		return "", ErrNoVersionLine
	}
	return strings.TrimRight(scanner.Text(), " \t\r"), nil
}
