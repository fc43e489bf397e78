package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
)

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create scheduled sessions",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "today",
			Short: "Fill today from your daily availability",
			RunE: func(cmd *cobra.Command, args []string) error {
				created, err := app.Plans.GenerateToday(cmd.Context(), now())
				if err != nil {
					return err
				}
				reportGenerated(cmd, created, "today")
				return nil
			},
		},
		&cobra.Command{
			Use:   "week",
			Short: "Fill the current week from the active plan",
			RunE: func(cmd *cobra.Command, args []string) error {
				created, err := app.Plans.GenerateWeek(cmd.Context(), now())
				if err != nil {
					return err
				}
				reportGenerated(cmd, created, "this week")
				return nil
			},
		},
	)

	return cmd
}

func reportGenerated(cmd *cobra.Command, created int, window string) {
	out := cmd.OutOrStdout()
	if created == 0 {
		fmt.Fprintln(out, formatter.StyleDim.Render("Nothing to do: "+window+" already has sessions."))
		return
	}
	fmt.Fprintln(out, formatter.StyleGreen.Render(fmt.Sprintf("Created %d session(s) for %s.", created, window)))
}
