package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jvminspect/pkg/inspect"
	"jvminspect/pkg/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Classify every registered installation home",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}
	if len(reg.Homes) == 0 {
		fmt.Println("No installations registered. Run 'jvminspect add <path>' first.")
		return nil
	}

	inspector := inspect.New()
	reports := make([]inspect.Report, 0, len(reg.Homes))
	for _, home := range reg.Homes {
		reports = append(reports, inspect.BuildReport(inspector.Inspect(cmd.Context(), home)))
	}

	if jsonOutput || noInteractive || !isTerminal() {
		return emitJSON(reports)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DEFAULT\tNAME\tVERSION\tVENDOR\tHOME")
	for _, r := range reports {
		marker := " "
		if r.Home == reg.Default {
			marker = "*"
		}
		if !r.Valid {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t%s\n", marker, r.DisplayName, r.Home)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", marker, r.DisplayName, r.Version, r.Vendor, r.Home)
	}
	return w.Flush()
}
