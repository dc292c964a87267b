package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/obadn/internal/dn"
)

// Parser errors.
var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrMissingConfigFile = errors.New("config file path is required")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// envPattern matches ${VAR} or ${VAR:-default}.
var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// LoadConfig loads configuration from a file path.
// It reads the file, substitutes environment variables, parses YAML,
// and applies defaults for missing values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, ErrMissingConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data.
// It substitutes environment variables and applies defaults for missing values.
func ParseConfig(data []byte) (*Config, error) {
	data = substituteEnvVars(data)

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if errs := ValidateConfig(config); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
	}

	return config, nil
}

// ApplyEnvOverrides applies LDAPDN_* environment variables to config.
// Only LDAPDN_BASE_DN is checked here; run ValidateConfig once any later
// overrides have been applied.
func ApplyEnvOverrides(config *Config) error {
	if v := strings.TrimSpace(os.Getenv("LDAPDN_BASE_DN")); v != "" {
		base, err := dn.Parse(v)
		if err != nil {
			return fmt.Errorf("%w: LDAPDN_BASE_DN: %v", ErrInvalidConfig, err)
		}
		config.Directory.BaseDN = base
	}
	if v := strings.TrimSpace(os.Getenv("LDAPDN_LOG_LEVEL")); v != "" {
		config.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LDAPDN_LOG_FORMAT")); v != "" {
		config.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("LDAPDN_OUTPUT_FORMAT")); v != "" {
		config.Output.Format = v
	}
	return nil
}

// substituteEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment variable values.
func substituteEnvVars(data []byte) []byte {
	return envPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		content := string(match[2 : len(match)-1])

		if idx := strings.Index(content, ":-"); idx != -1 {
			varName := content[:idx]
			defaultVal := content[idx+2:]
			if val := os.Getenv(varName); val != "" {
				return []byte(val)
			}
			return []byte(defaultVal)
		}

		return []byte(os.Getenv(content))
	})
}
