/*
Package config provides configuration management for corekit tools.

Package: config
Title: Core Configuration Management
Description: Loads TOML and YAML configuration files, layers them over
             defaults, lets environment variables override single keys and
             exposes typed getters including time zones.
Author: msto63
Version: v0.2.0
Created: 2025-01-25
Modified: 2026-10-18

Change History:
- 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
- 2026-10-18 v0.2.0: corekit discovery paths, GetLocation, rule kinds

Loading

	cfg, err := config.Load("corekit.toml")

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

Discovery looks for corekit.toml, corekit.yaml and corekit.yml in the working
directory, then $HOME/.config/corekit, then /etc/corekit. When nothing is
found and the options do not require a file, the result answers from
defaults and the environment only.

Access

Keys use dot notation. Every getter checks the environment first: with the
prefix COREKIT the key parser.fallback_zone is overridden by
COREKIT_PARSER_FALLBACK_ZONE.

	zone, err := cfg.GetLocation("parser.fallback_zone")
	level := cfg.GetString("log.level", "info")

Validation

	result := cfg.Validate(config.ValidationRules{
		"parser.pivot":          {OneOf: []string{"construction", "per-call"}},
		"parser.fallback_zone":  {Kind: "zone"},
	})
	if err := result.Err(); err != nil {
		return err
	}

Validation failures are INVALID_CONFIG errors from the core error package;
a missing file is NOT_FOUND and a syntax error INVALID_INPUT.
*/
package config
