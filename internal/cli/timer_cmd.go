package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/timer"
	"github.com/ritmo-app/ritmo/internal/tui"
)

func newTimerCmd(app *App) *cobra.Command {
	var preset, subjectArg string

	cmd := &cobra.Command{
		Use:   "timer [session-id]",
		Short: "Run a Pomodoro timer for a session",
		Long: "Runs the Pomodoro timer for the given session, or for today's first\n" +
			"pending session when no id is given. Presets: " + presetNames() + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("timer requires an interactive terminal")
			}
			ctx := cmd.Context()

			session, err := pickSession(cmd, app, args)
			if err != nil {
				return err
			}
			if session.Status.Terminal() {
				return fmt.Errorf("session %s is already %s", formatter.ShortID(session.ID), session.Status)
			}

			subject, err := pickSubject(cmd, app, subjectArg)
			if err != nil {
				return err
			}
			if subject != nil {
				session.SubjectID = subject.ID
				session.SubjectName = subject.Name
			}

			machine := timer.New(session.ID, timerConfig(session, preset))
			model := tui.NewTimerModel(session, machine)
			finished, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("running timer: %w", err)
			}

			final := finished.(tui.TimerModel)
			if !final.AwaitingFeedback() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("Timer cancelled. The session stays pending."))
				return nil
			}

			feedback, err := collectFeedback()
			if err != nil {
				return err
			}
			result, err := machine.SubmitFeedback(feedback)
			if err != nil {
				return err
			}
			if err := app.Sessions.CompleteWithFeedback(ctx, result, subject, now()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(
				fmt.Sprintf("Session complete: %d min studied over %d cycle(s).", result.StudiedMin, result.Cycles)))
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "pomodoro preset ("+presetNames()+")")
	cmd.Flags().StringVar(&subjectArg, "subject", "", "subject to study (name, id or id prefix)")
	return cmd
}

// pickSubject resolves the --subject flag. Without the flag the session
// keeps whatever subject it already carries.
func pickSubject(cmd *cobra.Command, app *App, input string) (*domain.Subject, error) {
	if input == "" {
		return nil, nil
	}
	id, err := resolveSubjectID(cmd.Context(), app, input)
	if err != nil {
		return nil, err
	}
	return app.Subjects.GetByID(cmd.Context(), id)
}

func pickSession(cmd *cobra.Command, app *App, args []string) (*domain.StudySession, error) {
	ctx := cmd.Context()
	if len(args) == 1 {
		id, err := resolveSessionID(ctx, app, args[0])
		if err != nil {
			return nil, err
		}
		return app.Sessions.GetByID(ctx, id)
	}

	today, err := app.Sessions.ListToday(ctx, now())
	if err != nil {
		return nil, err
	}
	session := firstPending(today)
	if session == nil {
		return nil, fmt.Errorf("no pending session today; run 'ritmo generate today' first")
	}
	return session, nil
}

// timerConfig picks phase durations: an explicit preset wins, otherwise the
// preset whose work phase is closest to the session's planned duration.
func timerConfig(session *domain.StudySession, preset string) timer.Config {
	if preset != "" {
		return timer.PresetByName(preset).Config()
	}

	best := timer.Presets[0]
	for _, p := range timer.Presets[1:] {
		if abs(p.WorkMin-session.DurationPlanned) < abs(best.WorkMin-session.DurationPlanned) {
			best = p
		}
	}
	return best.Config()
}

func collectFeedback() (timer.Feedback, error) {
	var fb timer.Feedback
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How productive was this session?").
				Options(
					huh.NewOption("1 - Barely focused", 1),
					huh.NewOption("2 - Struggled a lot", 2),
					huh.NewOption("3 - It was okay", 3),
					huh.NewOption("4 - Mostly focused", 4),
					huh.NewOption("5 - Deep focus", 5),
				).
				Value(&fb.ProductivityRating),
			huh.NewConfirm().
				Title("Were you distracted?").
				Value(&fb.HadDistractions),
			huh.NewInput().
				Title("Anything to note? (optional)").
				Value(&fb.Notes),
		),
	).WithTheme(ritmoHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return timer.Feedback{}, err
	}
	return fb, nil
}

func presetNames() string {
	names := make([]string, 0, len(timer.Presets))
	for _, p := range timer.Presets {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
