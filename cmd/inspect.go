package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jvminspect/cmd/ui/report"
	"jvminspect/cmd/ui/spinner"
	"jvminspect/pkg/inspect"
	"jvminspect/pkg/metadata"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <JAVA_HOME>",
	Short: "Probe and classify a single installation home",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	md := inspectWithSpinner(cmd.Context(), args[0])
	rep := inspect.BuildReport(md)

	if jsonOutput || noInteractive || !isTerminal() {
		return emitJSON(rep)
	}

	fmt.Println(report.Render(rep))
	return nil
}

// inspectWithSpinner shows a spinner while the probe runs, when attached to a
// terminal. The probe itself is unchanged either way.
func inspectWithSpinner(ctx context.Context, home string) *metadata.InstallationMetadata {
	inspector := inspect.New()
	if jsonOutput || noInteractive || !isTerminal() {
		return inspector.Inspect(ctx, home)
	}

	spinnerProgram := tea.NewProgram(spinner.InitialModel("Probing " + home + "..."))

	go func() {
		if _, err := spinnerProgram.Run(); err != nil {
			// Killing the spinner when the probe finishes is expected.
			if err.Error() != "program was killed" {
				fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
			}
		}
	}()

	md := inspector.Inspect(ctx, home)
	spinnerProgram.Quit()
	return md
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
