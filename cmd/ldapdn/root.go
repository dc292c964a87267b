package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/obadn/internal/config"
	"github.com/KilimcininKorOglu/obadn/internal/logging"
)

// app carries the streams and the state resolved before a command runs.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger logging.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		in:     stdin,
		out:    stdout,
		errOut: stderr,
		cfg:    config.DefaultConfig(),
		logger: logging.NewNop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ldapdn",
		Short: "Build, escape and decompose LDAP distinguished names",
		Long: `ldapdn builds escaped LDAP distinguished names from attribute
type/value pairs and decomposes escaped DNs back into their pairs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to config yaml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json (overrides config)")

	cmd.AddCommand(
		newEscapeCmd(a),
		newBuildCmd(a),
		newParseCmd(a),
		newRDNCmd(a),
		newNormalizeCmd(a),
		newLDIFCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// setup loads configuration, applies environment and flag overrides and
// creates the logger.
func (a *app) setup() error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// Validated below, once the flag overrides are in.
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
		return fmt.Errorf("%w: %v", config.ErrInvalidConfig, errors.Join(errs...))
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	switch cfg.Logging.Output {
	case "", "stderr":
		a.logger = logging.NewWithWriter(a.errOut, logCfg)
	default:
		logger, err := logging.New(logCfg)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		"config", a.configPath,
		"base_dn", cfg.Directory.BaseDN,
		"output_format", cfg.Output.Format,
	)
	return nil
}

// outputFormat resolves the format for pair output: the flag value, then
// the configured format, then table for terminals and text otherwise.
func (a *app) outputFormat(flagValue string) string {
	if flagValue != "" {
		return strings.ToLower(flagValue)
	}
	if a.cfg.Output.Format != "" {
		return strings.ToLower(a.cfg.Output.Format)
	}
	if f, ok := a.out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return formatTable
	}
	return formatText
}
