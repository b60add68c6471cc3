package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/msto63/corekit/utils/stringx"
	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

var betweenUnitFlag string

var betweenCmd = &cobra.Command{
	Use:   "between <von> <bis>",
	Short: "Zaehlt ganze Kalendereinheiten zwischen zwei Daten",
	Long: `Zaehlt die ganzen Kalendereinheiten zwischen zwei Datumsangaben.
Gezaehlt wird auf den UTC-Kalenderdaten, die Uhrzeit bleibt unberuecksichtigt.
Das Ergebnis ist unabhaengig von der Reihenfolge der Argumente.

Einheiten: days, weeks, months, years, decades, centuries, millennia`,
	Args: cobra.ExactArgs(2),
	RunE: runBetween,
}

func init() {
	betweenCmd.Flags().StringVarP(&betweenUnitFlag, "unit", "u", "", "Kalendereinheit (default: between.unit aus der Konfiguration)")
	rootCmd.AddCommand(betweenCmd)
}

type betweenResult struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Unit  string `json:"unit"`
	Count int64  `json:"count"`
}

func runBetween(cmd *cobra.Command, args []string) error {
	unit := current.betweenUnit
	if stringx.IsNotBlank(betweenUnitFlag) {
		u, err := timex.ParseCalendarUnit(betweenUnitFlag)
		if err != nil {
			return err
		}
		unit = u
	}

	from, err := current.parser.ParseChecked(args[0], current.zone)
	if err != nil {
		return err
	}
	to, err := current.parser.ParseChecked(args[1], current.zone)
	if err != nil {
		return err
	}

	n, err := timex.TimeBetween(from, to, unit)
	if err != nil {
		return err
	}

	result := betweenResult{
		From:  timex.FormatISO(from),
		To:    timex.FormatISO(to),
		Unit:  unit.String(),
		Count: n,
	}
	return emit(cmd.OutOrStdout(), result, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s\n", humanize.Comma(n), result.Unit)
	})
}
