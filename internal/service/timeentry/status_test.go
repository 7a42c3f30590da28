package timeentry

import (
	"testing"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus_Correct(t *testing.T) {
	entry := entryWith(t,
		"2025-03-10T11:05:00Z",
		"2025-03-10T15:00:00Z",
		"2025-03-10T16:20:00Z",
		"2025-03-10T20:55:00Z",
	)

	status, err := DeriveStatus(entry, nil)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusCorrect, status)
}

func TestDeriveStatus_NoJustification(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "")

	status, err := DeriveStatus(entry, nil)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusNoJustification, status)
}

func TestDeriveStatus_PendingApproval(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "")
	text := "trânsito parado"
	entry.ClockInJustification = &text

	// Text submitted but no decision yet.
	status, err := DeriveStatus(entry, []justification.Justification{
		{TimeType: timeentry.EventClockIn, Text: text, Status: justification.StatusPending},
	})

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusPendingApproval, status)
}

func TestDeriveStatus_PendingWithoutRequestRecord(t *testing.T) {
	// Justification text on the entry but no workflow record counts as pending.
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "")
	text := "consulta médica"
	entry.ClockInJustification = &text

	status, err := DeriveStatus(entry, nil)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusPendingApproval, status)
}

func TestDeriveStatus_OffSchedule(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "2025-03-10T21:30:00Z")
	inText := "consulta médica"
	outText := "compensação"
	entry.ClockInJustification = &inText
	entry.ClockOutJustification = &outText

	status, err := DeriveStatus(entry, []justification.Justification{
		{TimeType: timeentry.EventClockIn, Text: inText, Status: justification.StatusApproved},
		{TimeType: timeentry.EventClockOut, Text: outText, Status: justification.StatusApproved},
	})

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusOffSchedule, status)
}

func TestDeriveStatus_RejectedCountsAsUnjustified(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "")
	text := "esqueci"
	entry.ClockInJustification = &text

	status, err := DeriveStatus(entry, []justification.Justification{
		{TimeType: timeentry.EventClockIn, Text: text, Status: justification.StatusRejected},
	})

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusNoJustification, status)
}

func TestDeriveStatus_UnjustifiedWinsOverPending(t *testing.T) {
	entry := entryWith(t, "2025-03-10T11:30:00Z", "", "", "2025-03-10T21:30:00Z")
	text := "demanda urgente"
	entry.ClockOutJustification = &text

	status, err := DeriveStatus(entry, []justification.Justification{
		{TimeType: timeentry.EventClockOut, Text: text, Status: justification.StatusPending},
	})

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusNoJustification, status)
}

func TestDeriveStatus_MissingDayIsCorrect(t *testing.T) {
	entry := &timeentry.TimeEntry{
		UserID: "user-1",
		Date:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	status, err := DeriveStatus(entry, nil)

	require.NoError(t, err)
	assert.Equal(t, timeentry.StatusCorrect, status)
}
