// Package toolchain runs the external programs a build shells out to.
package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external program invocation. Dir is the working
// directory for the child; empty means the caller's. A relative Name
// (such as ./configure) resolves inside Dir.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command the way a shell user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands. The build sequence depends on this
// interface so tests can record invocations instead of spawning a
// compiler.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes, streaming their output
// to the configured writers as it is produced.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run spawns cmd and waits for it. A non-zero exit comes back as an
// error prefixed with the command line that produced it.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}
