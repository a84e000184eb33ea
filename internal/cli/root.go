// Package cli implements the rangectl command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/internal/config"
	"github.com/opsdesk/backend/pkg/datetime"
)

var (
	// Global flags
	todayFlag string // Pin "today" to a date, YYYY-MM-DD
	tzFlag    string // Overrides TIMEZONE

	// Resolved values
	location *time.Location
	clock    func() time.Time
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rangectl",
	Short: "Inspect calendar grids, presets and range selections",
	Long: `rangectl exercises the date-range engine behind the dashboard filters.

It renders month grids, resolves quick-select presets and replays
click sequences through the two-click selection, all in the local
calendar of the configured time zone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		tz := tzFlag
		if tz == "" {
			tz = config.Load().TimeZone
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("unknown time zone %q: %w", tz, err)
		}
		location = loc

		clock = time.Now
		if todayFlag != "" {
			d, err := datetime.ParseCanonical(todayFlag, loc)
			if err != nil {
				return fmt.Errorf("--today must be YYYY-MM-DD: %w", err)
			}
			pinned := d.Add(12 * time.Hour)
			clock = func() time.Time { return pinned }
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&todayFlag, "today", "", "Treat this date (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "Time zone (IANA name or Local); defaults to TIMEZONE")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
}
