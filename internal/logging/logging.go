// Package logging configures the process-wide zap logger from CLI flags.
package logging

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"console", "json"}
)

// Config holds the logging flag values.
type Config struct {
	Level  string
	Format string
}

// RegisterFlags adds --log-level and --log-format to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, "log-level", "warn",
		fmt.Sprintf("log level, one of: %s", strings.Join(levels, ", ")))
	flags.StringVar(&c.Format, "log-format", "console",
		fmt.Sprintf("log format, one of: %s", strings.Join(formats, ", ")))
}

// RegisterCompletions registers shell completions for the logging flags.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(levels, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("failed to register log-level completion: %w", err)
	}
	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(formats, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("failed to register log-format completion: %w", err)
	}
	return nil
}

// New builds a logger writing to w.
func (c *Config) New(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.Level))
	if err != nil || !slices.Contains(levels, strings.ToLower(c.Level)) {
		return nil, fmt.Errorf("invalid log level %q (valid: %s)", c.Level, strings.Join(levels, ", "))
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	var encoder zapcore.Encoder
	switch strings.ToLower(c.Format) {
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoderConfig = zap.NewProductionEncoderConfig()
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("invalid log format %q (valid: %s)", c.Format, strings.Join(formats, ", "))
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

// Install builds a logger and makes it the global zap logger.
func (c *Config) Install(w io.Writer) (*zap.Logger, error) {
	logger, err := c.New(w)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
