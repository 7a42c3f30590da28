package justification

import (
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// JUSTIFICATION TYPE DTOs
// ========================================

type CreateTypeRequest struct {
	TimeType      string `json:"time_type"` // "all" or one punch type
	Justification string `json:"justification"`
	Abonable      bool   `json:"abonable"`
	Discountable  bool   `json:"discountable"`
	Absence       bool   `json:"absence"`
}

// validateExclusiveFlags enforces the pairwise exclusivity of the three
// catalog flags: at most one of abonable, discountable, absence may be set.
func validateExclusiveFlags(abonable, discountable, absence bool) bool {
	count := 0
	for _, flag := range []bool{abonable, discountable, absence} {
		if flag {
			count++
		}
	}
	return count <= 1
}

func validTimeType(timeType string) bool {
	return timeType == TimeTypeAll || timeentry.EventType(timeType).IsValid()
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if !validTimeType(r.TimeType) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type",
			Message: "time_type must be \"all\" or one of clock_in, lunch_start, lunch_end, clock_out",
		})
	}

	if !validateExclusiveFlags(r.Abonable, r.Discountable, r.Absence) {
		errs = append(errs, validator.ValidationError{
			Field:   "flags",
			Message: "abonable, discountable and absence are mutually exclusive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTypeRequest struct {
	ID            string `json:"-"`
	TimeType      string `json:"time_type"`
	Justification string `json:"justification"`
	Abonable      bool   `json:"abonable"`
	Discountable  bool   `json:"discountable"`
	Absence       bool   `json:"absence"`
}

func (r *UpdateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required",
		})
	}

	if !validTimeType(r.TimeType) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type",
			Message: "time_type must be \"all\" or one of clock_in, lunch_start, lunch_end, clock_out",
		})
	}

	if !validateExclusiveFlags(r.Abonable, r.Discountable, r.Absence) {
		errs = append(errs, validator.ValidationError{
			Field:   "flags",
			Message: "abonable, discountable and absence are mutually exclusive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TypeResponse struct {
	ID            string `json:"id"`
	TimeType      string `json:"time_type"`
	Justification string `json:"justification"`
	Abonable      bool   `json:"abonable"`
	Discountable  bool   `json:"discountable"`
	Absence       bool   `json:"absence"`
}

// ========================================
// JUSTIFICATION WORKFLOW DTOs
// ========================================

type CreateJustificationRequest struct {
	TimeEntryID string  `json:"time_entry_id"`
	TimeType    string  `json:"time_type"`
	TypeID      *string `json:"type_id,omitempty"`
	Text        string  `json:"text"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.TimeEntryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_entry_id",
			Message: "time_entry_id must be a valid UUID",
		})
	}

	if !timeentry.EventType(r.TimeType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type",
			Message: "time_type must be one of clock_in, lunch_start, lunch_end, clock_out",
		})
	}

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "justification text cannot be empty",
		})
	}

	if r.TypeID != nil && !validator.IsValidUUID(*r.TypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "type_id",
			Message: "type_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationResponse struct {
	ID           string  `json:"id"`
	TimeEntryID  string  `json:"time_entry_id"`
	UserID       string  `json:"user_id"`
	UserName     *string `json:"user_name,omitempty"`
	EntryDate    *string `json:"entry_date,omitempty"`
	TimeType     string  `json:"time_type"`
	TypeID       *string `json:"type_id,omitempty"`
	Text         string  `json:"text"`
	Status       string  `json:"status"`
	ApproverID   *string `json:"approver_id,omitempty"`
	ApproverName *string `json:"approver_name,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
