// Package model defines the core data structures for dailyplan.
package model

import "time"

// Output format constants.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DateLayout is the layout used when a work day is serialized.
const DateLayout = "2006-01-02"

// WorkDay pairs a calendar date with the activities planned for it.
type WorkDay struct {
	Date       time.Time
	Activities string
}

// Weekday returns the English name of the day, e.g. "Friday".
func (d WorkDay) Weekday() string {
	return d.Date.Weekday().String()
}

// Schedule is the ordered list of work days that received activities.
type Schedule []WorkDay

// Entry is the serialized form of a WorkDay.
type Entry struct {
	Date       string `yaml:"date"`
	Weekday    string `yaml:"weekday"`
	Activities string `yaml:"activities"`
}

// Entries converts the schedule into its serialized form.
func (s Schedule) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for _, day := range s {
		entries = append(entries, Entry{
			Date:       day.Date.Format(DateLayout),
			Weekday:    day.Weekday(),
			Activities: day.Activities,
		})
	}
	return entries
}
