// Package buildplan lays out the commands that turn a CPython checkout
// into an interpreter on a POSIX host.
package buildplan

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"devinabox/internal/toolchain"
)

// DetectJobs returns the build parallelism for this host: one job per
// logical CPU, never less than one.
func DetectJobs() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// NeedsConfigure reports whether ./configure still has to run in dir.
// A Makefile left behind by an earlier run makes configure redundant.
func NeedsConfigure(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "Makefile"))
	return err != nil || !info.Mode().IsRegular()
}

// Plan is the ordered pair of commands a build runs. Both execute in
// the checkout directory, configure strictly before build.
type Plan struct {
	Configure toolchain.Command
	Build     toolchain.Command
	Jobs      int
}

// New lays out the plan for the checkout at dir. Configure runs with no
// flags; the build is a silent make spread across jobs processes.
func New(dir string, jobs int) Plan {
	if jobs < 1 {
		jobs = 1
	}
	return Plan{
		Configure: toolchain.Command{Name: "./configure", Dir: dir},
		Build: toolchain.Command{
			Name: "make",
			Args: []string{"-s", "-j", strconv.Itoa(jobs)},
			Dir:  dir,
		},
		Jobs: jobs,
	}
}
