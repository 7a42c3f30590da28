package timeentry

import (
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

type PunchRequest struct {
	UserID        string  `json:"user_id"`
	TimeType      string  `json:"time_type"` // clock_in | lunch_start | lunch_end | clock_out
	Timestamp     *string `json:"timestamp,omitempty"`
	Date          *string `json:"date,omitempty"` // defaults to today (UTC)
	Justification *string `json:"justification,omitempty"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if !EventType(r.TimeType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type",
			Message: "time_type must be one of clock_in, lunch_start, lunch_end, clock_out",
		})
	}

	if r.Timestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 timestamp",
			})
		}
	}

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateTimeEntryRequest struct {
	UserID                  string  `json:"user_id"`
	Date                    string  `json:"date"`
	ClockIn                 *string `json:"clock_in,omitempty"`
	LunchStart              *string `json:"lunch_start,omitempty"`
	LunchEnd                *string `json:"lunch_end,omitempty"`
	ClockOut                *string `json:"clock_out,omitempty"`
	ClockInJustification    *string `json:"clock_in_justification,omitempty"`
	LunchStartJustification *string `json:"lunch_start_justification,omitempty"`
	LunchEndJustification   *string `json:"lunch_end_justification,omitempty"`
	ClockOutJustification   *string `json:"clock_out_justification,omitempty"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	timestamps := map[string]*string{
		"clock_in":    r.ClockIn,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
		"clock_out":   r.ClockOut,
	}
	anyPresent := false
	for field, ts := range timestamps {
		if ts == nil {
			continue
		}
		anyPresent = true
		if _, ok := validator.IsValidDateTime(*ts); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid ISO8601 timestamp",
			})
		}
	}
	if !anyPresent {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "at least one punch timestamp is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimeEntryRequest struct {
	ID                      string  `json:"-"`
	ClockIn                 *string `json:"clock_in,omitempty"`
	LunchStart              *string `json:"lunch_start,omitempty"`
	LunchEnd                *string `json:"lunch_end,omitempty"`
	ClockOut                *string `json:"clock_out,omitempty"`
	ClockInJustification    *string `json:"clock_in_justification,omitempty"`
	LunchStartJustification *string `json:"lunch_start_justification,omitempty"`
	LunchEndJustification   *string `json:"lunch_end_justification,omitempty"`
	ClockOutJustification   *string `json:"clock_out_justification,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	timestamps := map[string]*string{
		"clock_in":    r.ClockIn,
		"lunch_start": r.LunchStart,
		"lunch_end":   r.LunchEnd,
		"clock_out":   r.ClockOut,
	}
	for field, ts := range timestamps {
		if ts == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*ts); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// WorkedHoursResponse is the three-way breakdown of a worked day.
type WorkedHoursResponse struct {
	MorningMinutes   int    `json:"morning_minutes"`
	AfternoonMinutes int    `json:"afternoon_minutes"`
	LunchMinutes     int    `json:"lunch_minutes"`
	TotalMinutes     int    `json:"total_minutes"`
	Total            string `json:"total"` // "<H>h<MM>m"
}

type TimeEntryResponse struct {
	ID                      string              `json:"id"`
	UserID                  string              `json:"user_id"`
	UserName                *string             `json:"user_name,omitempty"`
	Date                    string              `json:"date"`
	DateLabel               string              `json:"date_label"` // "segunda-feira, 10 de março de 2025"
	ClockIn                 *string             `json:"clock_in"`
	LunchStart              *string             `json:"lunch_start"`
	LunchEnd                *string             `json:"lunch_end"`
	ClockOut                *string             `json:"clock_out"`
	ClockInJustification    *string             `json:"clock_in_justification"`
	LunchStartJustification *string             `json:"lunch_start_justification"`
	LunchEndJustification   *string             `json:"lunch_end_justification"`
	ClockOutJustification   *string             `json:"clock_out_justification"`
	Status                  string              `json:"status"`
	Marker                  string              `json:"marker"` // missing | incomplete | complete
	WorkedHours             WorkedHoursResponse `json:"worked_hours"`
	BalanceMinutes          int                 `json:"balance_minutes"`
	Balance                 string              `json:"balance"` // signed "<H>h<MM>m"
	CreatedAt               string              `json:"created_at"`
	UpdatedAt               string              `json:"updated_at"`
}

type ListTimeEntryResponse struct {
	Entries    []TimeEntryResponse `json:"entries"`
	TotalItems int64               `json:"total_items"`
}
