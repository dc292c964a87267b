package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LogConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}
