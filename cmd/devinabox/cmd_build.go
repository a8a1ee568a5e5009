package main

import (
	"errors"

	"github.com/spf13/cobra"

	"devinabox/internal/launcher"
	"devinabox/internal/platform"
	"devinabox/internal/toolchain"
)

// errNoExecutable is the run's verdict when no interpreter binary
// exists after the build sequence.
var errNoExecutable = errors.New("No executable found")

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Configure and build the CPython checkout, then check the binary exists",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

// runBuild backs both `devinabox build` and the bare invocation.
func runBuild(cmd *cobra.Command, _ []string) error {
	fam := platform.Detect()
	l := launcher.New(toolchain.NewExecRunner(), cmd.OutOrStdout(), ".")
	res, err := l.Run(cmd.Context(), fam)
	if res.Outcome != launcher.Verified {
		// The missing binary is reported even when a command already
		// failed; the two signals are independent.
		return errors.Join(err, errNoExecutable)
	}
	return err
}
