package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/tui"
)

func newStatsCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show weekly progress, streak and time per subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.Summary(cmd.Context(), now())
			if err != nil {
				return err
			}

			if plain || !app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.ProgressReport(summary))
				return nil
			}

			_, err = tea.NewProgram(tui.NewStatsModel(summary), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print plain text instead of the dashboard")
	return cmd
}
