// Package testsuite runs CPython's own test suite against a built
// interpreter, in the most rigorous way regrtest offers.
package testsuite

import (
	"context"
	"errors"
	"strconv"

	"devinabox/internal/checkout"
	"devinabox/internal/logging"
	"devinabox/internal/platform"
	"devinabox/internal/toolchain"
)

// ErrNotBuilt reports that no interpreter exists to run the suite with.
var ErrNotBuilt = errors.New("CPython is not built")

// Args returns the regrtest arguments for a full run: warnings on by
// default, bytes/str comparisons fatal, environment variables ignored,
// randomized test order, failed tests re-run, every resource enabled,
// spread across jobs processes.
func Args(jobs int) []string {
	if jobs < 1 {
		jobs = 1
	}
	return []string{
		"-W", "default",
		"-bb",
		"-E",
		"-m", "test",
		"-r",
		"-w",
		"-u", "all",
		"-j", strconv.Itoa(jobs),
	}
}

// Run locates the interpreter for the family and launches the suite
// from the box root. The suite's exit status comes back through the
// runner's error.
func Run(ctx context.Context, r toolchain.Runner, root string, fam platform.Family, jobs int) error {
	bin, ok := checkout.Locate(root, fam)
	if !ok {
		return ErrNotBuilt
	}
	log := logging.New("testsuite")
	log.Info("running test suite", "interpreter", bin, "jobs", jobs)
	return r.Run(ctx, toolchain.Command{Name: bin, Args: Args(jobs), Dir: root})
}
