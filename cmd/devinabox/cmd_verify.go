package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"devinabox/internal/checkout"
	"devinabox/internal/display"
	"devinabox/internal/format"
	"devinabox/internal/launcher"
	"devinabox/internal/platform"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check for a built interpreter without running any build commands",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	fam := platform.Detect()
	path, ok := checkout.Locate(".", fam)
	if !ok {
		return errNoExecutable
	}

	out := cmd.OutOrStdout()
	verdict := display.Outcome(string(launcher.Verified))
	if info, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "%s: %s (%s, built %s ago)\n",
			verdict, path, format.FmtBytes(info.Size()), format.FmtDuration(time.Since(info.ModTime())))
	} else {
		fmt.Fprintf(out, "%s: %s\n", verdict, path)
	}
	return nil
}
