package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
	validOutputFormats = []string{"text", "json", "yaml", "table"}
)

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	if _, err := config.Directory.BaseDN.Pairs(); err != nil {
		errs = append(errs, ValidationError{Field: "directory.baseDN", Message: err.Error()})
	}

	if !contains(validLogLevels, strings.ToLower(config.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s", strings.Join(validLogLevels, ", ")),
		})
	}
	if !contains(validLogFormats, strings.ToLower(config.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %s", strings.Join(validLogFormats, ", ")),
		})
	}

	if config.Output.Format != "" && !contains(validOutputFormats, strings.ToLower(config.Output.Format)) {
		errs = append(errs, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be one of %s", strings.Join(validOutputFormats, ", ")),
		})
	}

	return errs
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
