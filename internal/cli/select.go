package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/backend/internal/picker"
	"github.com/opsdesk/backend/internal/ui"
	"github.com/opsdesk/backend/pkg/daterange"
	"github.com/opsdesk/backend/pkg/datetime"
)

// selectStep is one replayed click.
type selectStep struct {
	Date   string                    `json:"date"`
	Phase  daterange.Phase           `json:"phase"`
	Label  string                    `json:"label"`
	Commit *daterange.CanonicalRange `json:"commit,omitempty"`
}

var selectCmd = &cobra.Command{
	Use:   "select <date> <date> [date...]",
	Short: "Replay day clicks through the range picker",
	Long: `Feeds each date to the picker as a day-cell click, reopening it after
every committed range, and prints what the picker reports.

Examples:
  rangectl select 2024-06-10 2024-06-05
  rangectl select 2024-06-01 2024-06-01 2024-07-04 2024-07-01 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var commits []daterange.CanonicalRange
		p := picker.New(picker.Options{
			ID:       "cli",
			OnChange: func(r daterange.CanonicalRange) { commits = append(commits, r) },
			Location: location,
			Now:      clock,
		})
		defer p.Dispose()

		steps := make([]selectStep, 0, len(args))
		for _, arg := range args {
			d, err := datetime.ParseCanonical(arg, location)
			if err != nil {
				return fmt.Errorf("%q is not a YYYY-MM-DD date", arg)
			}

			p.Open()
			before := len(commits)
			p.ClickDay(d)

			step := selectStep{Date: d.Canonical(), Phase: p.Phase(), Label: p.Label()}
			if len(commits) > before {
				c := commits[len(commits)-1]
				step.Commit = &c
			}
			steps = append(steps, step)
		}

		if jsonOutput {
			return outputSuccess(cmd.OutOrStdout(), steps)
		}

		w := cmd.OutOrStdout()
		for _, s := range steps {
			if s.Commit != nil {
				fmt.Fprintf(w, "%s  %s %s\n", s.Date, ui.AccentBold.Render("committed"), s.Label)
				continue
			}
			fmt.Fprintf(w, "%s  %s %s\n", s.Date, ui.Muted.Render(s.Phase.String()), s.Label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
