package timeentry

import (
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
)

// DeriveStatus computes the server-owned status string for a time entry.
//
// Every recorded punch is evaluated against its tolerance window. A day with
// no deviations is "Correto". Deviations escalate by the worst pending
// condition: missing or rejected justification text wins over an undecided
// request, which wins over fully approved deviations ("Fora do padrão").
func DeriveStatus(entry *timeentry.TimeEntry, requests []justification.Justification) (string, error) {
	evals, err := EvaluateEntry(entry)
	if err != nil {
		return "", err
	}

	byType := make(map[timeentry.EventType]*justification.Justification, len(requests))
	for i := range requests {
		byType[requests[i].TimeType] = &requests[i]
	}

	hasDeviation := false
	hasUnjustified := false
	hasPending := false

	for eventType, eval := range evals {
		if eval.BalanceMinutes == 0 {
			continue
		}
		hasDeviation = true

		if !eval.IsJustified {
			hasUnjustified = true
			continue
		}

		req := byType[eventType]
		switch {
		case req == nil || req.Status == justification.StatusPending:
			// Text submitted but not decided yet.
			hasPending = true
		case req.Status == justification.StatusRejected:
			hasUnjustified = true
		}
	}

	switch {
	case !hasDeviation:
		return timeentry.StatusCorrect, nil
	case hasUnjustified:
		return timeentry.StatusNoJustification, nil
	case hasPending:
		return timeentry.StatusPendingApproval, nil
	default:
		return timeentry.StatusOffSchedule, nil
	}
}
