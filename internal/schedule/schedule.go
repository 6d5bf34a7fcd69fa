// Package schedule assigns activities to work days within a window of
// candidate calendar days.
package schedule

import (
	"time"

	"github.com/bryan-cox/dailyplan/internal/model"
)

// WeekdayIndex returns the day of the week with Monday as 0 and Sunday as 6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend returns true for Saturday and Sunday.
func IsWeekend(t time.Time) bool {
	return WeekdayIndex(t) >= 5
}

// Build walks candidateDays consecutive days starting at start and gives each
// weekday the next unused entry of activities. Weekends are skipped without
// consuming an entry. Once activities is exhausted the remaining days produce
// nothing.
func Build(start time.Time, candidateDays int, activities []string) model.Schedule {
	var days model.Schedule
	workDayCount := 0

	for i := 0; i < candidateDays; i++ {
		current := start.AddDate(0, 0, i)
		if IsWeekend(current) {
			continue
		}
		if workDayCount < len(activities) {
			days = append(days, model.WorkDay{Date: current, Activities: activities[workDayCount]})
			workDayCount++
		}
	}

	return days
}
