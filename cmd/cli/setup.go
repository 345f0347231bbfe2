package cli

import (
	"fmt"
	"os"

	"github.com/cortexai/cosmosdb-mcp/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loadConfig reads configuration, applies command-line overrides and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString(flagEnvFile)

	cfg, err := config.LoadWithEnvFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString(flagTransport); v != "" {
		cfg.Transport = v
	}
	if v, _ := cmd.Flags().GetString(flagAddr); v != "" {
		cfg.HTTPAddress = v
	}
	if v, _ := cmd.Flags().GetString(flagLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
		cfg.LogLevel = zerolog.LevelDebugValue
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if useConsole(cfg.LogFormat) {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

func useConsole(format string) bool {
	switch format {
	case config.LogFormatConsole:
		return true
	case config.LogFormatJSON:
		return false
	}
	fi, err := os.Stderr.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
