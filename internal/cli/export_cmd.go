package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export session history",
	}

	cmd.AddCommand(newExportCSVCmd(app))
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write full session history as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListAll(cmd.Context())
			if err != nil {
				return err
			}
			if err := export.ToCSV(sessions, out); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.StyleGreen.Render(fmt.Sprintf("Wrote %d session(s) to %s.", len(sessions), out)))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "ritmo-sessions.csv", "output file path")
	return cmd
}
