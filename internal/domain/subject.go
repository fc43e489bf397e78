package domain

import (
	"fmt"
	"time"
)

type Subject struct {
	ID        string
	Name      string
	Color     string // hex color for display
	Priority  SubjectPriority
	CreatedAt time.Time
}

// Validate rejects subjects that cannot be persisted.
func (s *Subject) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("subject name is required")
	}
	if s.Priority != "" && !ValidPriorities[string(s.Priority)] {
		return fmt.Errorf("invalid priority %q (use high, medium or low)", s.Priority)
	}
	return nil
}
