package team

import "context"

// TeamRepository defines data access methods for teams and memberships.
type TeamRepository interface {
	Create(ctx context.Context, team Team) (Team, error)
	GetByID(ctx context.Context, id string) (Team, error)
	GetByName(ctx context.Context, name string) (*Team, error)

	// List retrieves all teams with manager data and member counts.
	List(ctx context.Context) ([]Team, error)

	Update(ctx context.Context, team Team) error
	Delete(ctx context.Context, id string) error

	ListMembers(ctx context.Context, teamID string) ([]Member, error)
	AddMember(ctx context.Context, teamID string, userID string) error
	RemoveMember(ctx context.Context, teamID string, userID string) error
	IsMember(ctx context.Context, teamID string, userID string) (bool, error)

	// CountActive counts teams having at least one member.
	CountActive(ctx context.Context) (int64, error)
}
