package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <text>...",
	Short: "Bringt Datumsangaben in die kanonische Form",
	Long: `Liest jede Angabe mit allen bekannten Layouts und gibt sie als
yyyy-MM-ddTHH:mm:ss.SSSSSSSSSZ in UTC aus. Texte ohne Zone werden in der
Ersatz-Zeitzone (--zone) gelesen. Leere Angaben ergeben eine leere Zeile.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

type formatResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
}

func runFormat(cmd *cobra.Command, args []string) error {
	results := make([]formatResult, 0, len(args))
	for _, arg := range args {
		t, err := current.parser.ParseChecked(arg, current.zone)
		if err != nil {
			return err
		}
		results = append(results, formatResult{Input: arg, Canonical: timex.FormatISO(t)})
	}

	return emit(cmd.OutOrStdout(), results, func(w io.Writer) {
		for _, r := range results {
			fmt.Fprintln(w, r.Canonical)
		}
	})
}
