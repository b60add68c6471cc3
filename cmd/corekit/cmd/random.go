package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"

	mdwerrors "github.com/msto63/corekit/core/errors"
	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

var (
	randomFrom  string
	randomTo    string
	randomSeed  uint64
	randomCount int
)

var randomCmd = &cobra.Command{
	Use:   "random --from <datum> --to <datum>",
	Short: "Zieht Zufallszeitpunkte aus einem Bereich",
	Long: `Zieht gleichverteilte Zeitpunkte mit Millisekunden-Aufloesung aus dem
geschlossenen Bereich zwischen --from und --to. Mit --seed ist die Folge
reproduzierbar.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVar(&randomFrom, "from", "", "Beginn des Bereichs")
	randomCmd.Flags().StringVar(&randomTo, "to", "", "Ende des Bereichs")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Startwert fuer reproduzierbare Folgen")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "Anzahl der Zeitpunkte")
	_ = randomCmd.MarkFlagRequired("from")
	_ = randomCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, args []string) error {
	from, err := current.parser.ParseChecked(randomFrom, current.zone)
	if err != nil {
		return err
	}
	to, err := current.parser.ParseChecked(randomTo, current.zone)
	if err != nil {
		return err
	}
	if from.IsZero() || to.IsZero() {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "random", "blank range", "two dates")
	}
	if to.Before(from) {
		return mdwerrors.OutOfRange(mdwerrors.ModuleCLI, "random", timex.FormatISO(to), timex.FormatISO(from), nil)
	}
	if randomCount < 1 {
		return mdwerrors.OutOfRange(mdwerrors.ModuleCLI, "random", randomCount, 1, nil)
	}

	var src timex.Float64Source = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	if cmd.Flags().Changed("seed") {
		src = rand.New(rand.NewPCG(randomSeed, randomSeed))
	}

	results := make([]string, randomCount)
	for i := range results {
		results[i] = timex.FormatISO(timex.RandomZonedUTC(src, from, to))
	}

	return emit(cmd.OutOrStdout(), results, func(w io.Writer) {
		for _, r := range results {
			fmt.Fprintln(w, r)
		}
	})
}
