package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/internal/ui"
	"github.com/opsdesk/backend/pkg/daterange"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List every preset resolved against today",
	Long: `Lists the quick-select presets with the range each one covers today.

Examples:
  rangectl presets
  rangectl presets --today 2024-06-15
  rangectl presets --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolved := daterange.NewResolver(clock, location).All()
		if jsonOutput {
			return outputSuccess(cmd.OutOrStdout(), resolved)
		}

		w := cmd.OutOrStdout()
		for _, r := range resolved {
			fmt.Fprintf(w, "%-14s %s  %s .. %s\n",
				r.Key,
				ui.Muted.Render(fmt.Sprintf("%-14s", r.Label)),
				ui.Accent.Render(r.StartDate),
				ui.Accent.Render(r.EndDate),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
