package timeentry

import "errors"

// Time entry domain errors
var (
	// Evaluator input errors
	ErrInvalidDate      = errors.New("invalid date: expected YYYY-MM-DD")
	ErrInvalidEventType = errors.New("unknown event type")

	// Punch errors
	ErrEventAlreadyPunched = errors.New("this punch has already been recorded today")
	ErrEntryExists         = errors.New("a time entry already exists for this user and date")

	// General errors
	ErrEntryNotFound = errors.New("time entry not found")
	ErrUnauthorized  = errors.New("unauthorized to access this time entry")
)
