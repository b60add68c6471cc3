package cmd

import (
	"fmt"
	"io"
	"strconv"

	mdwerrors "github.com/msto63/corekit/core/errors"
	"github.com/msto63/corekit/utils/stringx"
	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

var epochUnitFlag string

var epochCmd = &cobra.Command{
	Use:   "epoch <value>...",
	Short: "Rechnet Epoch-Werte in kanonische Zeitpunkte um",
	Long: `Rechnet ganzzahlige Epoch-Werte um. Ohne --unit wird die Einheit
aus der Groessenordnung erkannt (Sekunden, Millisekunden, Mikrosekunden
oder Nanosekunden). Negative Werte nach "--" angeben.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEpoch,
}

func init() {
	epochCmd.Flags().StringVarP(&epochUnitFlag, "unit", "u", "", "Einheit: auto, s, ms, us, ns")
	rootCmd.AddCommand(epochCmd)
}

type epochResult struct {
	Value     int64  `json:"value"`
	Unit      string `json:"unit"`
	Detected  bool   `json:"detected"`
	Canonical string `json:"canonical"`
}

func runEpoch(cmd *cobra.Command, args []string) error {
	unit := current.epochUnit
	if stringx.IsNotBlank(epochUnitFlag) {
		u, err := timex.ParseEpochUnit(epochUnitFlag)
		if err != nil {
			return err
		}
		unit = u
	}

	results := make([]epochResult, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseInt(stringx.TrimWhitespace(arg), 10, 64)
		if err != nil {
			return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "epoch", arg, "integer")
		}

		u, detected := unit, false
		if u == timex.EpochUnspecified {
			u, detected = timex.ClassifyEpoch(v), true
		}
		t, err := timex.FromEpochUnit(v, u)
		if err != nil {
			return err
		}
		results = append(results, epochResult{
			Value:     v,
			Unit:      u.String(),
			Detected:  detected,
			Canonical: timex.FormatISO(t),
		})
	}

	return emit(cmd.OutOrStdout(), results, func(w io.Writer) {
		for _, r := range results {
			note := r.Unit
			if r.Detected {
				note += ", erkannt"
			}
			fmt.Fprintf(w, "%s %s\n", r.Canonical, mutedStyle.Render("("+note+")"))
		}
	})
}
