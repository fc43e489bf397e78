// Package formatter renders domain values for terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ritmo-app/ritmo/internal/domain"
	"github.com/ritmo-app/ritmo/internal/service"
)

// StatusStyle maps a session status to its display style.
func StatusStyle(status domain.SessionStatus) lipgloss.Style {
	switch status {
	case domain.SessionCompleted:
		return StyleGreen
	case domain.SessionPending:
		return StyleYellow
	case domain.SessionAbandoned:
		return StyleRed
	default:
		return StyleDim
	}
}

// ShortID returns the id prefix used in listings.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SessionTable renders sessions as aligned rows with a header line.
func SessionTable(sessions []*domain.StudySession) string {
	if len(sessions) == 0 {
		return StyleDim.Render("No sessions.") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-8s  %-10s  %-5s  %-18s  %-9s  %s",
		"ID", "DATE", "TIME", "SUBJECT", "STATUS", "MINUTES")))
	b.WriteString("\n")

	for _, s := range sessions {
		subject := s.SubjectName
		if subject == "" {
			subject = "-"
		}
		minutes := fmt.Sprintf("%d planned", s.DurationPlanned)
		if s.ActualDuration != nil {
			minutes = fmt.Sprintf("%d studied", *s.ActualDuration)
		}
		b.WriteString(fmt.Sprintf("%-8s  %-10s  %-5s  %-18s  %s  %s\n",
			ShortID(s.ID),
			s.Date,
			s.Time,
			truncate(subject, 18),
			StatusStyle(s.Status).Render(fmt.Sprintf("%-9s", s.Status)),
			StyleDim.Render(minutes),
		))
	}
	return b.String()
}

// SubjectTable renders the subject catalog.
func SubjectTable(subjects []*domain.Subject) string {
	if len(subjects) == 0 {
		return StyleDim.Render("No subjects.") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%-8s  %-20s  %s", "ID", "NAME", "PRIORITY")))
	b.WriteString("\n")
	for _, s := range subjects {
		b.WriteString(fmt.Sprintf("%-8s  %-20s  %s\n",
			ShortID(s.ID), truncate(s.Name, 20), priorityStyle(s.Priority).Render(string(s.Priority))))
	}
	return b.String()
}

// PlanSummary renders the active plan configuration.
func PlanSummary(p *domain.StudyPlan) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Active plan") + "\n")
	b.WriteString(fmt.Sprintf("  Session length:   %d min\n", p.SessionDuration))
	b.WriteString(fmt.Sprintf("  Sessions per day: %d\n", p.SessionsPerDay))
	b.WriteString(fmt.Sprintf("  Study days:       %s\n", strings.Join(p.StudyDays, ", ")))
	b.WriteString(fmt.Sprintf("  Preferred times:  %s\n", strings.Join(p.PreferredTimes, ", ")))
	return b.String()
}

// ProgressReport renders the dashboard summary as plain lines, for
// non-interactive output.
func ProgressReport(s *service.ProgressSummary) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Your progress") + "\n")
	b.WriteString(fmt.Sprintf("  This week: %d/%d sessions (%.0f%%)\n",
		s.Week.Completed, s.Week.Total, s.Week.Percent()))
	b.WriteString(fmt.Sprintf("  Streak:    %d day(s)\n", s.Streak))
	if s.LastStudyDate != "" {
		b.WriteString(StyleDim.Render("  Last studied "+s.LastStudyDate) + "\n")
	}
	b.WriteString("  " + StyleGreen.Render(s.Message) + "\n")
	if len(s.Totals) > 0 {
		b.WriteString(StyleHeader.Render("Minutes by subject") + "\n")
		for _, t := range s.Totals {
			name := t.SubjectName
			if name == "" {
				name = "(none)"
			}
			b.WriteString(fmt.Sprintf("  %-18s %d\n", truncate(name, 18), t.Minutes))
		}
	}
	return b.String()
}

func priorityStyle(p domain.SubjectPriority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	default:
		return StyleBlue
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
