package timeentry

import (
	"testing"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func TestEvaluate_LateClockInRequiresJustification(t *testing.T) {
	eval, err := Evaluate("2025-03-10", timeentry.EventClockIn, ts(t, "2025-03-10T11:15:00Z"), "")

	require.NoError(t, err)
	assert.Equal(t, 15, eval.BalanceMinutes)
	assert.False(t, eval.IsJustified)
}

func TestEvaluate_WithinToleranceBand(t *testing.T) {
	eval, err := Evaluate("2025-03-10", timeentry.EventLunchEnd, ts(t, "2025-03-10T16:20:00Z"), "")

	require.NoError(t, err)
	assert.Equal(t, 0, eval.BalanceMinutes)
	assert.True(t, eval.IsJustified)
}

// Boundary values sit inside the band: balance zero, justified without text.
func TestEvaluate_InclusiveBoundaries(t *testing.T) {
	cases := []struct {
		eventType timeentry.EventType
		lower     string
		upper     string
	}{
		{timeentry.EventClockIn, "2025-03-10T10:50:00Z", "2025-03-10T11:10:00Z"},
		{timeentry.EventLunchStart, "2025-03-10T14:50:00Z", "2025-03-10T15:10:00Z"},
		{timeentry.EventLunchEnd, "2025-03-10T16:05:00Z", "2025-03-10T16:25:00Z"},
		{timeentry.EventClockOut, "2025-03-10T20:50:00Z", "2025-03-10T21:10:00Z"},
	}

	for _, c := range cases {
		for _, bound := range []string{c.lower, c.upper} {
			eval, err := Evaluate("2025-03-10", c.eventType, ts(t, bound), "")
			require.NoError(t, err)
			assert.Equal(t, 0, eval.BalanceMinutes, "%s at %s", c.eventType, bound)
			assert.True(t, eval.IsJustified, "%s at %s", c.eventType, bound)
		}
	}
}

func TestEvaluate_OutsideBandSign(t *testing.T) {
	cases := []struct {
		name        string
		eventType   timeentry.EventType
		observed    string
		wantBalance int
	}{
		{"clock in one minute past upper", timeentry.EventClockIn, "2025-03-10T11:11:00Z", 11},
		{"clock in one minute before lower", timeentry.EventClockIn, "2025-03-10T10:49:00Z", -11},
		{"lunch start late", timeentry.EventLunchStart, "2025-03-10T15:30:00Z", 30},
		{"lunch end early", timeentry.EventLunchEnd, "2025-03-10T16:00:00Z", -15},
		{"clock out very late", timeentry.EventClockOut, "2025-03-10T22:00:00Z", 60},
		{"clock out very early", timeentry.EventClockOut, "2025-03-10T16:55:00Z", -245},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eval, err := Evaluate("2025-03-10", c.eventType, ts(t, c.observed), "")
			require.NoError(t, err)
			assert.Equal(t, c.wantBalance, eval.BalanceMinutes)
			assert.False(t, eval.IsJustified)
		})
	}
}

func TestEvaluate_JustificationTextOutsideBand(t *testing.T) {
	eval, err := Evaluate("2025-03-10", timeentry.EventClockIn, ts(t, "2025-03-10T11:15:00Z"), "consulta médica")

	require.NoError(t, err)
	assert.Equal(t, 15, eval.BalanceMinutes)
	assert.True(t, eval.IsJustified)
}

func TestEvaluate_NilObserved(t *testing.T) {
	// Nil timestamps always yield {0, false}, text or not.
	for _, text := range []string{"", "atestado"} {
		eval, err := Evaluate("2025-03-10", timeentry.EventClockOut, nil, text)
		require.NoError(t, err)
		assert.Equal(t, 0, eval.BalanceMinutes)
		assert.False(t, eval.IsJustified)
	}
}

func TestEvaluate_InvalidInput(t *testing.T) {
	_, err := Evaluate("10/03/2025", timeentry.EventClockIn, nil, "")
	assert.ErrorIs(t, err, timeentry.ErrInvalidDate)

	_, err = Evaluate("2025-03-10", timeentry.EventType("coffee_break"), nil, "")
	assert.ErrorIs(t, err, timeentry.ErrInvalidEventType)
}

func TestEvaluateEntry(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	text := "reunião externa"
	entry := &timeentry.TimeEntry{
		UserID:                  "user-1",
		Date:                    date,
		ClockIn:                 ts(t, "2025-03-10T11:05:00Z"),
		LunchStart:              ts(t, "2025-03-10T15:30:00Z"),
		LunchStartJustification: &text,
	}

	evals, err := EvaluateEntry(entry)
	require.NoError(t, err)
	require.Len(t, evals, 2)

	assert.Equal(t, 0, evals[timeentry.EventClockIn].BalanceMinutes)
	assert.True(t, evals[timeentry.EventClockIn].IsJustified)

	assert.Equal(t, 30, evals[timeentry.EventLunchStart].BalanceMinutes)
	assert.True(t, evals[timeentry.EventLunchStart].IsJustified)
}
