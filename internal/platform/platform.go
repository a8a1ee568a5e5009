// Package platform classifies the host into one of the two build
// families the launcher knows about.
//
// The classification happens once, at startup, and the resulting Family
// is passed down explicitly. Nothing below this package consults
// runtime.GOOS again.
package platform

import "runtime"

// Family is the coarse host classification the build sequence branches on.
type Family string

const (
	// Posix covers every host where ./configure && make is expected to
	// work: linux, darwin, the BSDs, solaris, aix.
	Posix Family = "posix"

	// Windows covers hosts that would need the PCBuild toolchain. The
	// launcher does not drive that toolchain; it points at the devguide
	// and only verifies.
	Windows Family = "windows"
)

// Detect classifies the current host.
func Detect() Family {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Valid reports whether f is one of the two known families.
func Valid(f Family) bool {
	return f == Posix || f == Windows
}
