package cli

import (
	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Sessions service.SessionService
	Stats    service.StatsService
	Subjects service.SubjectService
	Profiles service.ProfileService

	// Coach is nil when the LLM is disabled.
	Coach service.CoachService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ritmo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ritmo",
		Short:         "Personal study planner with a Pomodoro timer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOnboardCmd(app),
		newPlanCmd(app),
		newGenerateCmd(app),
		newSessionCmd(app),
		newTimerCmd(app),
		newStatsCmd(app),
		newSubjectCmd(app),
		newExportCmd(app),
	)

	return root
}
