// Package launcher drives a CPython build from start to verified binary.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"

	"devinabox/internal/buildplan"
	"devinabox/internal/checkout"
	"devinabox/internal/logging"
	"devinabox/internal/platform"
	"devinabox/internal/toolchain"
)

// Outcome is the verification verdict for a run. It is decided by
// probing the filesystem for the expected binary, never by the exit
// status of the commands that ran.
type Outcome string

const (
	Verified    Outcome = "verified"
	NotVerified Outcome = "not-verified"
)

// Result describes one launcher run.
type Result struct {
	Family           platform.Family
	Outcome          Outcome
	BinaryPath       string // absolute, set only when Verified
	ConfigureSkipped bool   // an existing Makefile made configure redundant
	BuildAttempted   bool   // false on Windows-family hosts
}

// Launcher owns the build sequence for a single invocation.
type Launcher struct {
	Runner toolchain.Runner
	Out    io.Writer // human-readable status lines; defaults to os.Stdout
	Root   string    // box root holding the cpython checkout
	Jobs   int       // build parallelism; < 1 means detect from the host
}

// New returns a launcher rooted at the given box directory.
func New(runner toolchain.Runner, out io.Writer, root string) *Launcher {
	if runner == nil {
		runner = toolchain.NewExecRunner()
	}
	return &Launcher{Runner: runner, Out: out, Root: root}
}

// Run executes the build sequence for the given host family, then
// verifies the outcome. The returned error reports command failures;
// the Result reports what the filesystem says. Both carry meaning at
// the same time: a failed rebuild next to a binary from an earlier run
// yields a non-nil error and a Verified result.
func (l *Launcher) Run(ctx context.Context, fam platform.Family) (Result, error) {
	log := logging.New("launcher")
	res := Result{Family: fam, Outcome: NotVerified}

	var runErr error
	switch fam {
	case platform.Windows:
		log.Info("windows-family host, not building", "family", fam)
		fmt.Fprintln(l.out(), "See the devguide's Getting Set Up guide for building under Windows")
	default:
		res.BuildAttempted = true
		runErr = l.build(ctx, &res)
	}

	if path, ok := checkout.Locate(l.Root, fam); ok {
		res.Outcome = Verified
		res.BinaryPath = path
		log.Info("interpreter verified", "path", path)
		fmt.Fprintf(l.out(), "Interpreter: %s\n", path)
	} else {
		log.Warn("no interpreter after run", "family", fam)
	}
	return res, runErr
}

// build runs configure and make inside the checkout. A configure
// failure aborts before make; the caller still verifies afterward.
func (l *Launcher) build(ctx context.Context, res *Result) error {
	log := logging.New("launcher")

	dir := checkout.Path(l.Root)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("no %s checkout in %s", checkout.Dir, l.Root)
	}

	jobs := l.Jobs
	if jobs < 1 {
		jobs = buildplan.DetectJobs()
	}
	plan := buildplan.New(dir, jobs)

	if buildplan.NeedsConfigure(dir) {
		log.Info("configuring", "dir", dir)
		if err := l.Runner.Run(ctx, plan.Configure); err != nil {
			return fmt.Errorf("configure: %w", err)
		}
	} else {
		res.ConfigureSkipped = true
		fmt.Fprintln(l.out(), "Makefile already exists; skipping ./configure")
	}

	log.Info("building", "dir", dir, "jobs", plan.Jobs)
	if err := l.Runner.Run(ctx, plan.Build); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

func (l *Launcher) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}
