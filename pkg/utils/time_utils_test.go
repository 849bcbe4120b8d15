package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDate_StripsClockAndOffset(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	pst := time.FixedZone("PST", -8*3600)

	// 23:30 in ICT is earlier the same day in UTC, and already the next day
	// would be wrong: the calendar date is taken in the input's own location.
	got := CalendarDate(time.Date(2025, 4, 1, 23, 30, 0, 0, ict))
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), got)

	got = CalendarDate(time.Date(2025, 4, 1, 0, 15, 0, 0, pst))
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, -2, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))

	// Offset noise on either side must not change the count.
	ict := time.FixedZone("ICT", 7*3600)
	assert.Equal(t, 2, DaysBetween(
		time.Date(2025, 4, 1, 23, 59, 0, 0, ict),
		time.Date(2025, 4, 3, 0, 1, 0, 0, time.UTC),
	))
}

func TestParseAndFormatCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2025-04-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-04-01", FormatCalendarDate(d))

	_, err = ParseCalendarDate("01/04/2025")
	assert.Error(t, err)

	assert.Equal(t, "", FormatCalendarDate(time.Time{}))
}
