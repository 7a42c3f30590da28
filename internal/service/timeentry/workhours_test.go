package timeentry

import (
	"testing"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
)

func entryWith(t *testing.T, clockIn, lunchStart, lunchEnd, clockOut string) *timeentry.TimeEntry {
	t.Helper()
	entry := &timeentry.TimeEntry{
		UserID: "user-1",
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	if clockIn != "" {
		entry.ClockIn = ts(t, clockIn)
	}
	if lunchStart != "" {
		entry.LunchStart = ts(t, lunchStart)
	}
	if lunchEnd != "" {
		entry.LunchEnd = ts(t, lunchEnd)
	}
	if clockOut != "" {
		entry.ClockOut = ts(t, clockOut)
	}
	return entry
}

func TestComputeWorkedHours_FullDay(t *testing.T) {
	entry := entryWith(t,
		"2025-03-10T08:00:00Z",
		"2025-03-10T12:00:00Z",
		"2025-03-10T13:00:00Z",
		"2025-03-10T18:00:00Z",
	)

	w := ComputeWorkedHours(entry, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, 240, w.Morning)
	assert.Equal(t, 60, w.LunchBreak)
	assert.Equal(t, 300, w.Afternoon)
	assert.Equal(t, 540, w.Total)
	assert.Equal(t, "9h00m", w.Formatted())
}

func TestComputeWorkedHours_OpenMorning(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:00:00Z", "", "", "")
	now := time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC)

	w := ComputeWorkedHours(entry, now)

	assert.Equal(t, 150, w.Morning)
	assert.Equal(t, 0, w.Afternoon)
	assert.Equal(t, 150, w.Total)
	assert.Equal(t, "2h30m", w.Formatted())
}

func TestComputeWorkedHours_OpenAfternoon(t *testing.T) {
	entry := entryWith(t,
		"2025-03-10T11:00:00Z",
		"2025-03-10T15:00:00Z",
		"2025-03-10T16:15:00Z",
		"",
	)
	now := time.Date(2025, 3, 10, 18, 15, 0, 0, time.UTC)

	w := ComputeWorkedHours(entry, now)

	assert.Equal(t, 240, w.Morning)
	assert.Equal(t, 75, w.LunchBreak)
	assert.Equal(t, 120, w.Afternoon)
	assert.Equal(t, 360, w.Total)
}

func TestComputeWorkedHours_NoLunchRecorded(t *testing.T) {
	// Clock-in and clock-out only: a single uninterrupted segment.
	entry := entryWith(t, "2025-03-10T09:00:00Z", "", "", "2025-03-10T17:30:00Z")

	w := ComputeWorkedHours(entry, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, 510, w.Morning)
	assert.Equal(t, 0, w.LunchBreak)
	assert.Equal(t, 0, w.Afternoon)
	assert.Equal(t, 510, w.Total)
	assert.Equal(t, "8h30m", w.Formatted())
}

func TestComputeWorkedHours_NoPunches(t *testing.T) {
	entry := entryWith(t, "", "", "", "")

	w := ComputeWorkedHours(entry, time.Now().UTC())

	assert.Equal(t, 0, w.Total)
	assert.Equal(t, "0h00m", w.Formatted())
}

func TestComputeWorkedHours_NeverNegative(t *testing.T) {
	// Inverted ordering clamps each segment to zero instead of going negative.
	entry := entryWith(t,
		"2025-03-10T12:00:00Z",
		"2025-03-10T11:00:00Z",
		"2025-03-10T16:00:00Z",
		"2025-03-10T15:00:00Z",
	)

	w := ComputeWorkedHours(entry, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, w.Morning)
	assert.Equal(t, 0, w.Afternoon)
	assert.GreaterOrEqual(t, w.Total, 0)
}

func TestDailyBalance(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	full := entryWith(t,
		"2025-03-10T11:00:00Z",
		"2025-03-10T15:00:00Z",
		"2025-03-10T16:15:00Z",
		"2025-03-10T21:00:00Z",
	)
	assert.Equal(t, 0, DailyBalance(full, now))

	short := entryWith(t, "2025-03-10T16:55:00Z", "", "", "")
	assert.Equal(t, -525, DailyBalance(short, time.Date(2025, 3, 10, 16, 55, 0, 0, time.UTC)))

	missing := entryWith(t, "", "", "", "")
	assert.Equal(t, 0, DailyBalance(missing, now))
}
