package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devinabox/internal/display"
	"devinabox/internal/doctor"
	"devinabox/internal/format"
	"devinabox/internal/platform"
)

var doctorFlags struct {
	format string
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect the box: checkouts, built docs, interpreter and tools",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorFlags.format, "format", "ascii", "table format: ascii or markdown")
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	var mode format.Mode
	switch doctorFlags.format {
	case "ascii":
		mode = format.ASCII
	case "markdown":
		mode = format.Markdown
	default:
		return fmt.Errorf("unknown format %q (want ascii or markdown)", doctorFlags.format)
	}

	fam := platform.Detect()
	rep, err := doctor.Run(cmd.Context(), ".", fam)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Host family: %s\n", display.FamilyName(string(fam)))
	fmt.Fprintln(out, doctor.Render(rep, mode))

	if !rep.Healthy() {
		return fmt.Errorf("missing required pieces: %s", strings.Join(rep.Missing(), ", "))
	}
	return nil
}
