package team

import "time"

// Team is an organizational grouping with one manager and a member list.
type Team struct {
	ID          string
	Name        string
	Description *string
	ManagerID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	ManagerName  *string
	ManagerEmail *string
	MemberCount  int
}

// Member is a user's membership in a team.
type Member struct {
	UserID   string
	TeamID   string
	JoinedAt time.Time

	// DTO / Join
	Name  string
	Email string
	Role  string
}
