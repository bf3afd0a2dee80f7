package model

import (
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used by forms and storage.
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day format used by reminders.
	TimeLayout = "15:04"
)

// ParseDate parses a calendar date as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// ParseClock validates a time of day.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(TimeLayout, strings.TrimSpace(s))
}

// ParseDateTime combines a calendar date and a time of day into an instant
// in loc.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
}
