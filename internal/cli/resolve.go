package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/pkg/daterange"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <preset>",
	Short: "Resolve one preset",
	Long: `Prints the range a single preset covers today.

Examples:
  rangectl resolve last_30_days
  rangectl resolve last_quarter --today 2024-02-10`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var keys []string
		for _, p := range daterange.Presets() {
			if strings.HasPrefix(p.Key, toComplete) {
				keys = append(keys, p.Key)
			}
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		p, ok := daterange.LookupPreset(key)
		if !ok {
			return fmt.Errorf("unknown preset %q\n\nRun 'rangectl presets' to list them", key)
		}
		r, err := daterange.NewResolver(clock, location).Resolve(key)
		if err != nil {
			return err
		}
		c := r.Canonical()

		if jsonOutput {
			return outputSuccess(cmd.OutOrStdout(), daterange.Resolved{
				Key:       p.Key,
				Label:     p.Label,
				StartDate: c.StartDate,
				EndDate:   c.EndDate,
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d days\n", c.StartDate, c.EndDate, r.Days())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
