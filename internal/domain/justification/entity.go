package justification

import (
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
)

// TimeTypeAll marks a catalog entry applicable to every punch.
const TimeTypeAll = "all"

// JustificationType is a catalog entry describing a reason code.
// Of the three flags, at most one may be true at a time.
type JustificationType struct {
	ID            string
	TimeType      string // "all" or one of the four punch types
	Justification string // reason label shown to users
	Abonable      bool   // deviation is forgiven, no balance discount
	Discountable  bool   // deviation is discounted from the hour bank
	Absence       bool   // marks a full absence
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesTo reports whether the reason code can justify the given punch.
func (t *JustificationType) AppliesTo(eventType timeentry.EventType) bool {
	return t.TimeType == TimeTypeAll || t.TimeType == string(eventType)
}

// RestrictedToManagers reports whether the code is hidden from members.
// Abono and Falta style codes are applied by managers, not self-served.
func (t *JustificationType) RestrictedToManagers() bool {
	return t.Abonable || t.Absence
}

// VisibleTo is the single role-visibility policy for catalog entries.
func (t *JustificationType) VisibleTo(role user.Role) bool {
	if role == user.RoleManager {
		return true
	}
	return !t.RestrictedToManagers()
}

// Status represents the approval state of a justification request.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Justification is an approval request tied to one time entry and punch.
type Justification struct {
	ID          string
	TimeEntryID string
	UserID      string
	TimeType    timeentry.EventType
	TypeID      *string // optional catalog reason code
	Text        string
	Status      Status
	ApproverID  *string
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	UserName     *string
	ApproverName *string
	EntryDate    *time.Time
}

// IsDecided reports whether the request has already been processed.
func (j *Justification) IsDecided() bool {
	return j.Status != StatusPending
}
