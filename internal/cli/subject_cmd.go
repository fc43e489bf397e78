package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/domain"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage subjects",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var color, priority string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := &domain.Subject{
				Name:     args[0],
				Color:    color,
				Priority: domain.SubjectPriority(priority),
			}
			if err := app.Subjects.Create(cmd.Context(), subject); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.StyleGreen.Render(fmt.Sprintf("Added %s (%s).", subject.Name, formatter.ShortID(subject.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#6366F1", "display color (hex)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "priority (high, medium, low)")
	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.SubjectTable(subjects))
			return nil
		},
	}
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <subject-id>",
		Short: "Remove a subject (past sessions keep its name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveSubjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Subjects.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("Subject removed."))
			return nil
		},
	}
}
