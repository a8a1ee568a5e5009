package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"devinabox/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "devinabox",
	Short: "Build and check the CPython checkout in a Python-Dev-in-a-Box working copy",
	Long: "Devinabox drives the CPython build inside a prepared box: it classifies\n" +
		"the host once, runs ./configure and make where that works, and always\n" +
		"finishes by checking that the expected interpreter binary exists.\n\n" +
		"Run it with no arguments from the box root; build is the default.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		lvl, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(lvl, "text")
		return nil
	},
	RunE: runBuild,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn or error")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
