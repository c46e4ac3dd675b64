package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/diegoclair/weekday-api/internal/config"
	"github.com/diegoclair/weekday-api/internal/domain/entity"
	"github.com/diegoclair/weekday-api/internal/domain/service"
	"github.com/spf13/cobra"
)

var (
	lookupTZ string
	lookupAt string
)

func newLookupCmd(mode entity.Mode) *cobra.Command {
	c := &cobra.Command{
		Use:   string(mode) + " <weekday>",
		Short: fmt.Sprintf("Print timestamps for %s <weekday>", mode),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runLookup(cmd.OutOrStdout(), cfg, mode, args[0])
		},
	}
	c.Flags().StringVar(&lookupTZ, "tz", "", "IANA timezone (defaults to DEFAULT_TIMEZONE)")
	c.Flags().StringVar(&lookupAt, "at", "", "reference instant in RFC 3339 (defaults to now)")
	return c
}

func init() {
	rootCmd.AddCommand(newLookupCmd(entity.ModeNext))
	rootCmd.AddCommand(newLookupCmd(entity.ModeThis))
}

func runLookup(out io.Writer, cfg *config.Config, mode entity.Mode, weekday string) error {
	var now time.Time
	if lookupAt != "" {
		t, err := time.Parse(time.RFC3339, lookupAt)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		now = t
	}

	// one-off lookups never touch the history store
	services, err := service.NewInstance(nil, cfg)
	if err != nil {
		return err
	}

	result, err := services.Day.Compute(entity.DayRequest{
		Weekday:  weekday,
		Timezone: lookupTZ,
		Mode:     mode,
		Now:      now,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
