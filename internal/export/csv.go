// Package export writes session history to interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ritmo-app/ritmo/internal/domain"
)

// ToCSV writes session history to path, one row per session, ordered as
// given. Pointer fields render empty when unset.
func ToCSV(sessions []*domain.StudySession, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()
	return WriteCSV(sessions, f)
}

// WriteCSV streams the CSV rows to w.
func WriteCSV(sessions []*domain.StudySession, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Date", "Time", "Subject", "Status", "Planned (min)", "Actual (min)", "Completed At", "Rating", "Distractions", "Notes"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range sessions {
		completedAt := ""
		if s.CompletedAt != nil {
			completedAt = s.CompletedAt.Local().Format(time.RFC3339)
		}
		actual := ""
		if s.ActualDuration != nil {
			actual = strconv.Itoa(*s.ActualDuration)
		}
		rating := ""
		if s.ProductivityRating != nil {
			rating = strconv.Itoa(*s.ProductivityRating)
		}
		distractions := ""
		if s.HadDistractions != nil {
			distractions = strconv.FormatBool(*s.HadDistractions)
		}

		row := []string{
			s.Date,
			s.Time,
			s.SubjectName,
			string(s.Status),
			strconv.Itoa(s.DurationPlanned),
			actual,
			completedAt,
			rating,
			distractions,
			s.FeedbackNotes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
