package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Listet die unterstuetzten Layouts",
	Long: `Listet die Layouts in der Reihenfolge, in der sie probiert werden.
Der erste vollstaendige Treffer gewinnt. Zweistellige Jahre werden im
Fenster ab dem angezeigten Pivot-Jahr gelesen.`,
	Args: cobra.NoArgs,
	RunE: runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

type layoutsResult struct {
	PivotYear int      `json:"pivot_year"`
	Layouts   []string `json:"layouts"`
}

func runLayouts(cmd *cobra.Command, args []string) error {
	result := layoutsResult{
		PivotYear: current.parser.PivotYear(),
		Layouts:   current.parser.Layouts(),
	}

	return emit(cmd.OutOrStdout(), result, func(w io.Writer) {
		for i, name := range result.Layouts {
			fmt.Fprintf(w, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%2d", i+1)), name)
		}
		fmt.Fprintf(w, "\n%s %d-%d\n", labelStyle.Render("pivot"), result.PivotYear, result.PivotYear+99)
	})
}
