package main

import (
	"github.com/spf13/cobra"

	"devinabox/internal/buildplan"
	"devinabox/internal/platform"
	"devinabox/internal/testsuite"
	"devinabox/internal/toolchain"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run CPython's test suite with the built interpreter, rigorously",
	Long: "Runs the full regrtest suite against the interpreter in the box:\n" +
		"warnings on, bytes/str comparisons fatal, environment ignored,\n" +
		"randomized order, failures re-run, all resources enabled, one\n" +
		"worker per CPU.",
	Args: cobra.NoArgs,
	RunE: runTest,
}

func runTest(cmd *cobra.Command, _ []string) error {
	fam := platform.Detect()
	return testsuite.Run(cmd.Context(), toolchain.NewExecRunner(), ".", fam, buildplan.DetectJobs())
}
