package timeentry

import (
	"time"
)

// EventType identifies one of the four daily punches.
type EventType string

const (
	EventClockIn    EventType = "clock_in"
	EventLunchStart EventType = "lunch_start"
	EventLunchEnd   EventType = "lunch_end"
	EventClockOut   EventType = "clock_out"
)

// EventTypes lists the punches in chronological order.
var EventTypes = []EventType{EventClockIn, EventLunchStart, EventLunchEnd, EventClockOut}

// IsValid reports whether t names a known punch.
func (t EventType) IsValid() bool {
	switch t {
	case EventClockIn, EventLunchStart, EventLunchEnd, EventClockOut:
		return true
	}
	return false
}

// Status values surfaced to clients. These are the opaque enum strings the
// front end maps to visual treatment; they are owned by this service.
const (
	StatusCorrect         = "Correto"
	StatusOffSchedule     = "Fora do padrão"
	StatusNoJustification = "Sem justificativa"
	StatusPendingApproval = "Pendente aprovação"
)

// DayMarker classifies a day for calendar display.
type DayMarker string

const (
	MarkerMissing    DayMarker = "missing"
	MarkerComplete   DayMarker = "complete"
	MarkerIncomplete DayMarker = "incomplete"
)

// TimeEntry holds one record per (user, date). At most one row may exist for
// a given user and calendar day.
type TimeEntry struct {
	ID                      string
	UserID                  string
	Date                    time.Time
	ClockIn                 *time.Time
	LunchStart              *time.Time
	LunchEnd                *time.Time
	ClockOut                *time.Time
	ClockInJustification    *string
	LunchStartJustification *string
	LunchEndJustification   *string
	ClockOutJustification   *string
	Status                  string
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// DTO / Join
	UserName *string
	UserRole *string
}

// EventTime returns the recorded timestamp for the given punch.
func (e *TimeEntry) EventTime(t EventType) *time.Time {
	switch t {
	case EventClockIn:
		return e.ClockIn
	case EventLunchStart:
		return e.LunchStart
	case EventLunchEnd:
		return e.LunchEnd
	case EventClockOut:
		return e.ClockOut
	}
	return nil
}

// SetEventTime records the timestamp for the given punch.
func (e *TimeEntry) SetEventTime(t EventType, ts *time.Time) {
	switch t {
	case EventClockIn:
		e.ClockIn = ts
	case EventLunchStart:
		e.LunchStart = ts
	case EventLunchEnd:
		e.LunchEnd = ts
	case EventClockOut:
		e.ClockOut = ts
	}
}

// Justification returns the free-text justification for the given punch.
func (e *TimeEntry) Justification(t EventType) *string {
	switch t {
	case EventClockIn:
		return e.ClockInJustification
	case EventLunchStart:
		return e.LunchStartJustification
	case EventLunchEnd:
		return e.LunchEndJustification
	case EventClockOut:
		return e.ClockOutJustification
	}
	return nil
}

// SetJustification records the free-text justification for the given punch.
func (e *TimeEntry) SetJustification(t EventType, text *string) {
	switch t {
	case EventClockIn:
		e.ClockInJustification = text
	case EventLunchStart:
		e.LunchStartJustification = text
	case EventLunchEnd:
		e.LunchEndJustification = text
	case EventClockOut:
		e.ClockOutJustification = text
	}
}

// Marker classifies the day: no punches at all is missing, all four present
// is complete, anything in between is incomplete.
func (e *TimeEntry) Marker() DayMarker {
	count := 0
	for _, t := range EventTypes {
		if e.EventTime(t) != nil {
			count++
		}
	}
	switch count {
	case 0:
		return MarkerMissing
	case len(EventTypes):
		return MarkerComplete
	default:
		return MarkerIncomplete
	}
}
