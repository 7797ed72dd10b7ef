package utils

import (
	"fmt"
	"time"
)

// DateLayout is the dd-MM-yyyy format outfits are saved with
const DateLayout = "02-01-2006"

// FormatDMY formats t as dd-MM-yyyy
func FormatDMY(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDMY parses a dd-MM-yyyy date. Calendar validation is strict:
// "31-02-2024" is rejected instead of rolling over to March.
func ParseDMY(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected dd-MM-yyyy: %w", value, err)
	}
	return t, nil
}

// Today returns the current date truncated to midnight in loc
func Today(now time.Time, loc *time.Location) time.Time {
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween returns the number of calendar days from a to b, ignoring the time of day
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
