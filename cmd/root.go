package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jvminspect/pkg/logging"
)

const Version = "0.1.0"

var (
	jsonOutput    bool
	noInteractive bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "jvminspect",
	Short: "Classify JVM installations by version, vendor and capabilities",
	Long: `jvminspect probes JVM installation homes and reports what actually lives
there: the language version, the vendor behind the build, and whether the
install is a full JDK or a runtime-only JRE.

Homes are supplied explicitly or kept in a small registry; jvminspect never
goes hunting for installations on its own.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("jvminspect version {{.Version}}\n")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(defaultCmd)
	rootCmd.AddCommand(browseCmd)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&noInteractive, "no-interactive", false, "Skip interactive output (for CI/automation)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
