package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateFiltering(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateSources(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.File != "" && config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive when logging.file is set")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateFiltering(config *Config) []string {
	var validationErrors []string
	switch config.Filtering.Format {
	case RulesetFormatFlat, RulesetFormatIOS:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"filtering.format must be one of: flat, ios (got: %s)",
			config.Filtering.Format,
		))
	}
	if config.Filtering.OutputDir == "" {
		validationErrors = append(validationErrors, "filtering.output_dir cannot be empty")
	}
	if config.Filtering.MaxParallel < 1 {
		validationErrors = append(validationErrors, "filtering.max_parallel must be at least 1")
	}
	if config.Filtering.WatchDebounceMs < 0 {
		validationErrors = append(validationErrors, "filtering.watch_debounce_ms must be non-negative")
	}
	return validationErrors
}

func validateDatabase(config *Config) []string {
	if config.Database.Path == "" {
		return []string{"database.path cannot be empty"}
	}
	return nil
}

func validateSources(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Sources))
	for i, s := range config.Sources {
		if s.Name == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("sources[%d].name cannot be empty", i))
		} else if seen[s.Name] {
			validationErrors = append(validationErrors, fmt.Sprintf("sources[%d].name %q is used twice", i, s.Name))
		}
		seen[s.Name] = true

		if s.Path == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("sources[%d].path cannot be empty", i))
		}
		switch s.Kind {
		case SourceKindAuto, SourceKindAdblock, SourceKindDuckDuckGo, "":
		default:
			validationErrors = append(validationErrors, fmt.Sprintf(
				"sources[%d].kind must be one of: auto, adblock, duckduckgo (got: %s)",
				i, s.Kind,
			))
		}
	}
	return validationErrors
}
