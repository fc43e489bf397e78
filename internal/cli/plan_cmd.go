package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect and adjust the study plan",
	}

	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanAdjustCmd(app),
	)

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.GetActive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlanSummary(plan))
			return nil
		},
	}
}

func newPlanAdjustCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "adjust",
		Short: "Let the AI coach tune plan parameters from your history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Coach == nil {
				return fmt.Errorf("the AI coach is disabled; set RITMO_LLM_ENABLED=true and run an Ollama server")
			}

			adjustment, err := app.Coach.AdjustPlan(cmd.Context(), now())
			if err != nil {
				return fmt.Errorf("adjusting plan: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleGreen.Render(adjustment.Message))
			for _, a := range adjustment.Adjustments {
				fmt.Fprintf(out, "  • %s\n", a)
			}

			plan, err := app.Plans.GetActive(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.PlanSummary(plan))
			return nil
		},
	}
}
