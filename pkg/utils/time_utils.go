// pkg/utils/time_utils.go
package utils

import "time"

// All day arithmetic in the planner works on timezone-naive calendar dates.
// Comparing instants instead of dates is how off-by-one day counts happen
// when clients sit in different offsets, so everything is pinned to UTC
// midnight before any math.

const calendarLayout = "2006-01-02"

// CalendarDate strips the clock and offset from t, keeping only the
// year/month/day as observed in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = CalendarDate(a)
	b = CalendarDate(b)
	return int(b.Sub(a).Hours() / 24)
}

// ParseCalendarDate parses an ISO "YYYY-MM-DD" string into a UTC-midnight date.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(calendarLayout, s)
}

// FormatCalendarDate renders a date as "YYYY-MM-DD", "" for the zero time.
func FormatCalendarDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(calendarLayout)
}

// Use explicit "seconds" variant for DB storage
func NowUnixSeconds() int64 { return time.Now().Unix() }
