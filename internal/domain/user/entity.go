package user

import "time"

type Role string

const (
	RoleManager Role = "MANAGER" // Can approve justifications, manage teams and reports
	RoleMember  Role = "MEMBER"  // Regular employee punching the clock
)

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	Status          Status
	BalanceMinutes  int // accumulated hour bank ("banco de horas"), signed
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsManager checks if the user can approve justifications and manage teams
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsActive checks if the user may authenticate and punch the clock
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// CanApprove checks if the user can decide justification requests
func (u *User) CanApprove() bool {
	return u.IsManager()
}
