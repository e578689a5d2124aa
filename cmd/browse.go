package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"jvminspect/cmd/ui/report"
	"jvminspect/pkg/inspect"
	"jvminspect/pkg/metadata"
	"jvminspect/pkg/registry"
	"jvminspect/pkg/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse registered installations",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if noInteractive || !isTerminal() {
		return fmt.Errorf("browse requires an interactive terminal, use 'jvminspect list --json' instead")
	}

	reg, err := registry.Load()
	if err != nil {
		return err
	}
	if len(reg.Homes) == 0 {
		fmt.Println("No installations registered. Run 'jvminspect add <path>' first.")
		return nil
	}

	inspector := inspect.New()
	installations := make([]*metadata.InstallationMetadata, 0, len(reg.Homes))
	for _, home := range reg.Homes {
		installations = append(installations, inspector.Inspect(cmd.Context(), home))
	}

	m := tui.NewModel(installations, reg.Default)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("error running picker: %w", err)
	}

	final, ok := finalModel.(tui.Model)
	if !ok || final.Selected == "" {
		return nil
	}

	for _, md := range installations {
		if md.JavaHome() == final.Selected {
			fmt.Println(report.Render(inspect.BuildReport(md)))
			break
		}
	}
	return nil
}
