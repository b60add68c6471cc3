// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file with a known name and extension and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: corekit search paths, defaults passed through to Load

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/corekit/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the corekit search order: the working
// directory, $HOME/.config/corekit and /etc/corekit
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "corekit"))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "etc", "corekit"))

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"corekit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "COREKIT",
	}
}

// Discover loads the first configuration file found. Without a file it
// returns a configuration backed by defaults and the environment, or a
// NOT_FOUND error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	if configPath, err := FindConfigFile(options); err == nil {
		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searchPaths, ", "))).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}

	return paths
}
