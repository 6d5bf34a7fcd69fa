// Package report renders a schedule for output.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/bryan-cox/dailyplan/internal/model"
)

// ActivitiesLabel precedes the activities of each work day in text output.
const ActivitiesLabel = "Activities planned for today:"

// headerLayout renders as "Friday 1 August, 2025".
const headerLayout = "Monday 2 January, 2006"

// Header returns the title line for a work day.
func Header(t time.Time) string {
	return fmt.Sprintf("=== %s ===", t.Format(headerLayout))
}

// PrintWorkDay writes the header, label, activities and a blank separator line.
func PrintWorkDay(out io.Writer, day model.WorkDay) error {
	if _, err := fmt.Fprintln(out, Header(day.Date)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, ActivitiesLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, day.Activities); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

// PrintSchedule writes every work day of the schedule in order.
func PrintSchedule(out io.Writer, s model.Schedule) error {
	for _, day := range s {
		if err := PrintWorkDay(out, day); err != nil {
			return fmt.Errorf("could not print %s: %w", day.Date.Format(model.DateLayout), err)
		}
	}
	return nil
}
