package timeentry

import (
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
)

// punchWindow holds a reference punch time and its tolerance band, all in
// minutes since UTC midnight. Bounds are inclusive on both ends.
type punchWindow struct {
	Reference int
	Lower     int
	Upper     int
}

// referenceSchedule is the fixed per-event schedule. It must match the
// business rule used by consuming clients to avoid display disagreement.
var referenceSchedule = map[timeentry.EventType]punchWindow{
	timeentry.EventClockIn:    {Reference: 11 * 60, Lower: 10*60 + 50, Upper: 11*60 + 10},
	timeentry.EventLunchStart: {Reference: 15 * 60, Lower: 14*60 + 50, Upper: 15*60 + 10},
	timeentry.EventLunchEnd:   {Reference: 16*60 + 15, Lower: 16*60 + 5, Upper: 16*60 + 25},
	timeentry.EventClockOut:   {Reference: 21 * 60, Lower: 20*60 + 50, Upper: 21*60 + 10},
}

// ScheduledMinutes is the length of a full scheduled day: 11:00-15:00 plus
// 16:15-21:00, lunch excluded.
const ScheduledMinutes = (15-11)*60 + (21*60 - (16*60 + 15))

// Evaluation is the outcome of classifying one punch against its window.
type Evaluation struct {
	BalanceMinutes int
	IsJustified    bool
}

// Evaluate classifies a single clock event against the reference schedule.
//
// A nil observed timestamp yields a zero balance and no justification. An
// observed time inside the tolerance band (bounds inclusive) is justified
// regardless of text. Outside the band the balance is observed minus
// reference (positive when late) and justification comes from the text.
func Evaluate(date string, eventType timeentry.EventType, observed *time.Time, justification string) (Evaluation, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return Evaluation{}, timeentry.ErrInvalidDate
	}

	window, ok := referenceSchedule[eventType]
	if !ok {
		return Evaluation{}, timeentry.ErrInvalidEventType
	}

	if observed == nil {
		return Evaluation{BalanceMinutes: 0, IsJustified: false}, nil
	}

	minutes := timeutil.MinutesOfDayUTC(*observed)

	if minutes >= window.Lower && minutes <= window.Upper {
		return Evaluation{BalanceMinutes: 0, IsJustified: true}, nil
	}

	return Evaluation{
		BalanceMinutes: minutes - window.Reference,
		IsJustified:    justification != "",
	}, nil
}

// EvaluateEntry evaluates all four punches of an entry, keyed by event type.
// Unpunched events are skipped.
func EvaluateEntry(entry *timeentry.TimeEntry) (map[timeentry.EventType]Evaluation, error) {
	date := timeutil.FormatDate(entry.Date)
	result := make(map[timeentry.EventType]Evaluation, len(timeentry.EventTypes))

	for _, eventType := range timeentry.EventTypes {
		observed := entry.EventTime(eventType)
		if observed == nil {
			continue
		}
		text := ""
		if j := entry.Justification(eventType); j != nil {
			text = *j
		}
		eval, err := Evaluate(date, eventType, observed, text)
		if err != nil {
			return nil, err
		}
		result[eventType] = eval
	}

	return result, nil
}
