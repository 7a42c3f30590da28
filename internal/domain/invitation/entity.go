package invitation

import "time"

// Status represents the status of an invitation
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Invitation carries a pending email and role awaiting acceptance.
type Invitation struct {
	ID         string
	Email      string
	Name       *string
	Role       string // MANAGER or MEMBER
	TeamID     *string
	Status     Status
	Token      string
	InvitedBy  string
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	InviterName  *string
	InviterEmail *string
	TeamName     *string
}

// IsExpired checks if the invitation has expired (query-time check)
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// CanBeAccepted checks if the invitation can be accepted
func (i *Invitation) CanBeAccepted() bool {
	return i.Status == StatusPending && !i.IsExpired()
}
