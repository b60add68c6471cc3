package cmd

import (
	"fmt"
	"io"
	"os"

	mdwerror "github.com/msto63/corekit/core/error"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	zoneFlag   string
	outputFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "corekit",
	Short: "corekit - Datums- und Zeitwerkzeuge",
	Long: `corekit liest Datumsangaben in vielen Schreibweisen und gibt sie
in der kanonischen Form yyyy-MM-ddTHH:mm:ss.SSSSSSSSSZ (UTC) aus.

Befehle:
  format   - Text in kanonische Form bringen
  parse    - Text analysieren (Layout, Zone, Alter)
  epoch    - Epoch-Werte mit Einheitenerkennung umrechnen
  between  - Kalendereinheiten zwischen zwei Daten zaehlen
  random   - Zufallszeitpunkte in einem Bereich ziehen
  layouts  - Unterstuetzte Layouts auflisten`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the command line and returns the process exit status
func Main() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := Execute()
	if err == nil {
		return 0
	}

	printError(stderr, err)
	if current != nil {
		current.logger.LogError(err)
	}
	return exitCode(err)
}

// exitCode maps corekit errors to their code's exit status. Anything else
// comes from cobra's argument and flag handling.
func exitCode(err error) int {
	if _, ok := mdwerror.As(err); ok {
		return mdwerror.GetCode(err).ExitCode()
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: Suche nach corekit.toml/.yaml)")
	rootCmd.PersistentFlags().StringVar(&zoneFlag, "zone", "", "Ersatz-Zeitzone fuer Texte ohne Zone (z.B. UTC, Europe/Berlin)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Ausgabeformat: text oder json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Fehler:"), err)
}
