package config

import "github.com/KilimcininKorOglu/obadn/internal/dn"

// Config holds the complete ldapdn configuration.
type Config struct {
	Directory DirectoryConfig `yaml:"directory"`
	Logging   LogConfig       `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
}

// DirectoryConfig holds directory-related configuration.
type DirectoryConfig struct {
	// BaseDN is an escaped DN appended as the unescaped suffix by "build --base".
	BaseDN dn.DN `yaml:"baseDN"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// OutputConfig controls how commands print decomposed DNs.
type OutputConfig struct {
	// Format is one of text, json, yaml or table. Empty selects table on a
	// terminal and text otherwise.
	Format string `yaml:"format"`
}
