package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// now is a seam for tests.
var now = time.Now

// resolveSessionID expands a full id or unambiguous id prefix against the
// current week's sessions, falling back to full history.
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("session ID is required")
	}

	sessions, err := app.Sessions.ListWeek(ctx, now())
	if err != nil {
		return "", err
	}
	if id, err := matchSessionID(sessions, input); err == nil {
		return id, nil
	}

	sessions, err = app.Sessions.ListAll(ctx)
	if err != nil {
		return "", err
	}
	return matchSessionID(sessions, input)
}

func matchSessionID(sessions []*domain.StudySession, input string) (string, error) {
	var matches []string
	for _, s := range sessions {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("session not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("session ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSubjectID expands a full id, unambiguous id prefix or exact name.
func resolveSubjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("subject ID is required")
	}

	subjects, err := app.Subjects.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range subjects {
		if s.ID == input || strings.EqualFold(s.Name, input) {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("subject not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("subject ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// firstPending returns the earliest pending session in the list.
func firstPending(sessions []*domain.StudySession) *domain.StudySession {
	for _, s := range sessions {
		if s.Status == domain.SessionPending {
			return s
		}
	}
	return nil
}
