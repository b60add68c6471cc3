package cmd

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/msto63/corekit/core/log"
	"github.com/msto63/corekit/utils/stringx"
	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Analysiert eine Datumsangabe",
	Long: `Zeigt fuer eine Datumsangabe die kanonische Form, das erkannte
Layout, die Herkunft der Zeitzone und das Alter relativ zu jetzt.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

type parseResult struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Layout    string `json:"layout"`
	Zone      string `json:"zone"`
	ZoneFrom  string `json:"zone_source"`
	EpochMs   int64  `json:"epoch_ms"`
	Relative  string `json:"relative"`
}

func runParse(cmd *cobra.Command, args []string) error {
	text := args[0]
	if stringx.IsBlank(text) {
		return emit(cmd.OutOrStdout(), parseResult{Input: text}, func(w io.Writer) {
			printFields(w, field{"canonical", mutedStyle.Render("(leer)")})
		})
	}

	timer := current.logger.StartTimer("parse").WithField("input", text)
	m, err := current.parser.Match(text, current.zone)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()

	zoneFrom := "text"
	if !m.ZoneFromText {
		zoneFrom = "fallback"
	}

	result := parseResult{
		Input:     text,
		Canonical: timex.FormatISO(m.Time),
		Layout:    m.Layout,
		Zone:      zoneLabel(m.Time),
		ZoneFrom:  zoneFrom,
		EpochMs:   m.Time.UnixMilli(),
		Relative:  humanize.Time(m.Time),
	}
	current.logger.Debug("parsed", log.String("layout", m.Layout), log.Time("instant", m.Time))

	return emit(cmd.OutOrStdout(), result, func(w io.Writer) {
		printFields(w,
			field{"canonical", result.Canonical},
			field{"layout", result.Layout},
			field{"zone", result.Zone + " " + mutedStyle.Render("("+result.ZoneFrom+")")},
			field{"epoch ms", humanize.Comma(result.EpochMs)},
			field{"relative", result.Relative},
		)
	})
}

// zoneLabel names the location of t, falling back to its offset for
// unnamed fixed zones
func zoneLabel(t time.Time) string {
	if name := t.Location().String(); name != "" {
		return name
	}
	return t.Format("-07:00")
}
