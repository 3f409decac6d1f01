package fixtures

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05"

	daysPerYear = 365
)

// YearDates returns 365 consecutive dates starting on January 1 of year.
// Leap years are not accounted for, so a leap year stops at December 30.
func YearDates(year int) []string {
	dates := make([]string, 0, daysPerYear)
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	for day := range daysPerYear {
		dates = append(dates, start.AddDate(0, 0, day).Format(DateLayout))
	}

	return dates
}

// ToTimestamp joins a YYYY-MM-DD date with a wall-clock time. Seconds are always zero and no zone is attached.
func ToTimestamp(date string, hour, minute int) (string, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("failed to parse date '%s': %w", date, err)
	}

	stamp := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

	return stamp.Format(TimestampLayout), nil
}
