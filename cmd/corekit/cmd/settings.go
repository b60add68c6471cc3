package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/msto63/corekit/core/config"
	mdwerrors "github.com/msto63/corekit/core/errors"
	"github.com/msto63/corekit/core/log"
	"github.com/msto63/corekit/utils/stringx"
	"github.com/msto63/corekit/utils/timex"
	"github.com/spf13/cobra"
)

// settings holds everything a command needs after configuration has been
// loaded and validated
type settings struct {
	cfg         *config.Config
	logger      *log.Logger
	parser      *timex.Parser
	zone        *time.Location
	output      string
	epochUnit   timex.EpochUnit
	betweenUnit timex.CalendarUnit
}

var current *settings

var configDefaults = map[string]interface{}{
	"parser.fallback_zone": "Local",
	"parser.pivot":         "construction",
	"output.format":        "text",
	"log.level":            "warn",
	"log.format":           "console",
	"epoch.unit":           "auto",
	"between.unit":         "days",
}

var configRules = config.ValidationRules{
	"parser.fallback_zone": {Kind: "zone"},
	"parser.pivot":         {OneOf: []string{"construction", "per-call"}},
	"output.format":        {OneOf: []string{"text", "json"}},
	"log.level": {Check: func(v string) error {
		_, err := log.ParseLevel(v)
		return err
	}},
	"log.format": {Check: func(v string) error {
		_, err := log.ParseFormat(v)
		return err
	}},
	"epoch.unit": {Check: func(v string) error {
		_, err := timex.ParseEpochUnit(v)
		return err
	}},
	"between.unit": {Check: func(v string) error {
		_, err := timex.ParseCalendarUnit(v)
		return err
	}},
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "COREKIT",
			Defaults:  configDefaults,
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = configDefaults
	return config.Discover(opts)
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	// values were validated above
	level, _ := log.ParseLevel(cfg.GetString("log.level"))
	if verbose {
		level = log.LevelDebug
	}
	format, _ := log.ParseFormat(cfg.GetString("log.format"))
	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "corekit",
	}).WithCorrelationID(uuid.New().String())
	log.SetDefault(logger)

	zoneName := stringx.FirstNonBlank(zoneFlag, cfg.GetString("parser.fallback_zone"))
	zone, err := config.LoadLocation(stringx.TrimWhitespace(zoneName))
	if err != nil {
		return err
	}

	output := strings.ToLower(stringx.FirstNonBlank(outputFlag, cfg.GetString("output.format")))
	if output != "text" && output != "json" {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "output", output, "text|json")
	}

	opts := []timex.Option{timex.WithLogger(logger.WithName("timex"))}
	if strings.EqualFold(cfg.GetString("parser.pivot"), "per-call") {
		opts = append(opts, timex.WithPivotPerCall())
	}

	epochUnit, _ := timex.ParseEpochUnit(cfg.GetString("epoch.unit"))
	betweenUnit, _ := timex.ParseCalendarUnit(cfg.GetString("between.unit"))

	current = &settings{
		cfg:         cfg,
		logger:      logger,
		parser:      timex.NewParser(opts...),
		zone:        zone,
		output:      output,
		epochUnit:   epochUnit,
		betweenUnit: betweenUnit,
	}

	logger.Debug("configuration loaded", log.Fields{
		"config_file": cfg.FilePath(),
		"zone":        zone.String(),
		"output":      output,
		"pivot_year":  current.parser.PivotYear(),
		"command":     cmd.Name(),
	})
	return nil
}
