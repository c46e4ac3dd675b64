package cmd

import (
	"os"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "weekday",
	Short: "Resolve named weekdays to concrete timestamps",
	Long: `weekday answers "when is next Saturday?" for any IANA timezone.

Run "weekday serve" for the HTTP API, or "weekday next <day>" and
"weekday this <day>" for a one-off lookup printed as JSON.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file (overrides CONFIG_FILE)")
}

// loadConfig reads .env, applies --config and returns the validated config
// with logging configured.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	if configFile != "" {
		if err := os.Setenv("CONFIG_FILE", configFile); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}
