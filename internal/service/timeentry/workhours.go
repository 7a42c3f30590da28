package timeentry

import (
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
)

// WorkedHours is the three-way breakdown of a worked day in minutes.
// Total is always Morning plus Afternoon; the lunch break is excluded.
type WorkedHours struct {
	Morning    int
	Afternoon  int
	LunchBreak int
	Total      int
}

// Formatted renders the total as "<H>h<MM>m".
func (w WorkedHours) Formatted() string {
	return timeutil.FormatMinutesHours(w.Total)
}

func diffMinutes(start, end time.Time) int {
	d := int(end.Sub(start).Minutes())
	if d < 0 {
		return 0
	}
	return d
}

// ComputeWorkedHours computes worked minutes for an entry, tolerant of
// partially filled days. Open segments (no lunch-start yet, or lunch ended
// but no clock-out) are measured against now, so an in-progress day ticks.
func ComputeWorkedHours(entry *timeentry.TimeEntry, now time.Time) WorkedHours {
	var w WorkedHours

	if entry.ClockIn == nil {
		return w
	}

	switch {
	case entry.LunchStart != nil:
		w.Morning = diffMinutes(*entry.ClockIn, *entry.LunchStart)
	case entry.ClockOut != nil:
		// No lunch recorded: a single uninterrupted segment.
		w.Morning = diffMinutes(*entry.ClockIn, *entry.ClockOut)
	default:
		w.Morning = diffMinutes(*entry.ClockIn, now)
	}

	if entry.LunchStart != nil && entry.LunchEnd != nil {
		w.LunchBreak = diffMinutes(*entry.LunchStart, *entry.LunchEnd)
	}

	if entry.LunchEnd != nil {
		if entry.ClockOut != nil {
			w.Afternoon = diffMinutes(*entry.LunchEnd, *entry.ClockOut)
		} else {
			w.Afternoon = diffMinutes(*entry.LunchEnd, now)
		}
	}

	w.Total = w.Morning + w.Afternoon
	return w
}

// DailyBalance is the day's hour-bank contribution: worked total minus the
// scheduled day length. Days without any punch contribute nothing.
func DailyBalance(entry *timeentry.TimeEntry, now time.Time) int {
	if entry.Marker() == timeentry.MarkerMissing {
		return 0
	}
	return ComputeWorkedHours(entry, now).Total - ScheduledMinutes
}
