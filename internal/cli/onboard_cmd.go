package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ritmo-app/ritmo/internal/cli/formatter"
	"github.com/ritmo-app/ritmo/internal/domain"
)

func newOnboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Answer the survey and configure your study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("onboard requires an interactive terminal")
			}

			profile := &domain.UserProfile{}
			var availableStr string
			if err := surveyForm(profile, &availableStr).Run(); err != nil {
				return err
			}
			profile.DailyAvailableMin, _ = strconv.Atoi(strings.TrimSpace(availableStr))

			plan := &domain.StudyPlan{}
			var durationStr, perDayStr, timesStr string
			if err := planForm(plan, &durationStr, &perDayStr, &timesStr).Run(); err != nil {
				return err
			}
			plan.SessionDuration, _ = strconv.Atoi(strings.TrimSpace(durationStr))
			plan.SessionsPerDay, _ = strconv.Atoi(strings.TrimSpace(perDayStr))
			plan.PreferredTimes = splitTimes(timesStr)

			ctx := cmd.Context()
			if err := app.Profiles.SaveOnboarding(ctx, profile); err != nil {
				return err
			}
			if err := app.Plans.Save(ctx, plan); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("You're all set!"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.PlanSummary(plan))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleDim.Render("Run 'ritmo generate week' to schedule your sessions."))
			return nil
		},
	}
}

func surveyForm(p *domain.UserProfile, availableStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What are you studying for?").
				Options(
					huh.NewOption("An exam or certification", "exam"),
					huh.NewOption("University or school", "school"),
					huh.NewOption("Learning a new skill", "skill"),
					huh.NewOption("Personal growth", "personal"),
				).
				Value(&p.StudyGoal),
			huh.NewSelect[string]().
				Title("How often do you want to study?").
				Options(
					huh.NewOption("Every day", "daily"),
					huh.NewOption("Most days", "most days"),
					huh.NewOption("A few days a week", "few days"),
				).
				Value(&p.WeeklyFrequency),
			huh.NewSelect[string]().
				Title("How long can you stay focused?").
				Options(
					huh.NewOption("Short bursts (15-25 min)", "short"),
					huh.NewOption("Medium stretches (25-50 min)", "medium"),
					huh.NewOption("Long sessions (50+ min)", "long"),
				).
				Value(&p.FocusCapacity),
			huh.NewSelect[string]().
				Title("When do you study best?").
				Options(
					huh.NewOption("Morning", "morning"),
					huh.NewOption("Afternoon", "afternoon"),
					huh.NewOption("Evening", "evening"),
				).
				Value(&p.BestTime),
			huh.NewSelect[string]().
				Title("What gets in your way the most?").
				Options(
					huh.NewOption("Procrastination", "procrastination"),
					huh.NewOption("Distractions", "distractions"),
					huh.NewOption("Lack of time", "time"),
					huh.NewOption("Losing motivation", "motivation"),
				).
				Value(&p.MainDifficulty),
			huh.NewSelect[string]().
				Title("What kind of routine suits you?").
				Options(
					huh.NewOption("Fixed and structured", "structured"),
					huh.NewOption("Flexible", "flexible"),
				).
				Value(&p.RoutineStyle),
			huh.NewInput().
				Title("Minutes available per day").
				Placeholder("120").
				Validate(validatePositiveInt).
				Value(availableStr),
		),
	).WithTheme(ritmoHuhTheme()).WithShowHelp(false)
}

func planForm(plan *domain.StudyPlan, durationStr, perDayStr, timesStr *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which days do you study?").
				Options(
					huh.NewOption("Monday", domain.DayMon),
					huh.NewOption("Tuesday", domain.DayTue),
					huh.NewOption("Wednesday", domain.DayWed),
					huh.NewOption("Thursday", domain.DayThu),
					huh.NewOption("Friday", domain.DayFri),
					huh.NewOption("Saturday", domain.DaySat),
					huh.NewOption("Sunday", domain.DaySun),
				).
				Value(&plan.StudyDays),
			huh.NewInput().
				Title("Minutes per session").
				Placeholder("50").
				Validate(validatePositiveInt).
				Value(durationStr),
			huh.NewInput().
				Title("Sessions per day").
				Placeholder("2").
				Validate(validatePositiveInt).
				Value(perDayStr),
			huh.NewInput().
				Title("Preferred times (HH:MM, comma separated)").
				Placeholder("09:00, 14:00").
				Value(timesStr),
		),
	).WithTheme(ritmoHuhTheme()).WithShowHelp(false)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func splitTimes(s string) []string {
	var times []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			times = append(times, t)
		}
	}
	return times
}
