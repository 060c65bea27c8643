package timex

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the canonical textual form of a calendar day.
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical 24-hour time of day, zero-padded.
	ClockLayout = "15:04"
	// MonthLayout is used to address a month in the CLI.
	MonthLayout = "2006-01"
)

var (
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidClock reports whether s is a zero-padded HH:mm between 00:00 and 23:59.
func IsValidClock(s string) bool {
	return clockRe.MatchString(s)
}

// IsValidDate reports whether s is a real day written as YYYY-MM-DD.
// "2024-02-30" and "2024-3-1" are both rejected.
func IsValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses YYYY-MM-DD into midnight of that day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock splits a strict HH:mm value into hours and minutes.
func ParseClock(s string) (hour, minute int, err error) {
	if !IsValidClock(s) {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// At combines a stored date and clock into a point in time in loc.
func At(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), nil
}

// FormatDisplayDate renders a day the way the day view titles it,
// e.g. "Friday, March 1, 2024".
func FormatDisplayDate(date string) string {
	t, err := ParseDate(date, time.UTC)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func FormatTimeRange(start, end string) string {
	return start + " – " + end
}

// MonthGrid returns six weeks of days covering the given month, starting on
// weekStart. Days outside the month belong to the neighbouring months.
func MonthGrid(year int, month time.Month, weekStart time.Weekday) [6][7]time.Time {
	var grid [6][7]time.Time

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	cursor := first.AddDate(0, 0, -offset)

	for w := 0; w < 6; w++ {
		for d := 0; d < 7; d++ {
			grid[w][d] = cursor
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return grid
}
