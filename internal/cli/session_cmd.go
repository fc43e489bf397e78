package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "List and update study sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionTransitionCmd(app, "skip", "skipped", "Mark a session skipped", app.skipFn),
		newSessionTransitionCmd(app, "abandon", "abandoned", "Mark a session abandoned", app.abandonFn),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var week, all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				sessions []*domain.StudySession
				err      error
			)
			switch {
			case all:
				sessions, err = app.Sessions.ListAll(ctx)
			case week:
				sessions, err = app.Sessions.ListWeek(ctx, now())
			default:
				sessions, err = app.Sessions.ListToday(ctx, now())
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.SessionTable(sessions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "list the current week")
	cmd.Flags().BoolVar(&all, "all", false, "list full history")
	return cmd
}

type transitionFn func(cmd *cobra.Command, id string) error

func (a *App) skipFn(cmd *cobra.Command, id string) error {
	return a.Sessions.MarkSkipped(cmd.Context(), id)
}

func (a *App) abandonFn(cmd *cobra.Command, id string) error {
	return a.Sessions.MarkAbandoned(cmd.Context(), id)
}

func newSessionTransitionCmd(app *App, verb, past, short string, fn transitionFn) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <session-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveSessionID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := fn(cmd, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.StyleDim.Render(fmt.Sprintf("Session %s %s.", formatter.ShortID(id), past)))
			return nil
		},
	}
}
