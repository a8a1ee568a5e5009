// Package checkout knows where the CPython working copy lives inside a
// box and which interpreter binaries a build is expected to leave behind.
package checkout

import (
	"os"
	"path/filepath"

	"devinabox/internal/platform"
)

// Dir is the checkout's directory name, fixed relative to the box root.
const Dir = "cpython"

// Path returns the checkout directory under the given box root.
func Path(root string) string {
	return filepath.Join(root, Dir)
}

// BinaryCandidates lists the interpreter paths a build may produce for
// the given family, relative to the box root, in probe order. POSIX
// makefiles name the binary python, except on macOS where the
// case-insensitive filesystem collides with the Python/ source
// directory and forces python.exe. PCBuild debug builds land next to
// the project files, with a separate AMD64 tree for 64-bit.
func BinaryCandidates(f platform.Family) []string {
	if f == platform.Windows {
		return []string{
			filepath.Join(Dir, "PCBuild", "python_d.exe"),
			filepath.Join(Dir, "PCBuild", "AMD64", "python_d.exe"),
		}
	}
	return []string{
		filepath.Join(Dir, "python"),
		filepath.Join(Dir, "python.exe"),
	}
}

// Locate probes the family's candidates under root and returns the
// absolute path of the first regular file found. The verdict comes
// from the filesystem alone; callers must not substitute command exit
// codes for it.
func Locate(root string, f platform.Family) (string, bool) {
	for _, rel := range BinaryCandidates(f) {
		p := filepath.Join(root, rel)
		info, err := os.Stat(p)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return p, true
		}
		return abs, true
	}
	return "", false
}
