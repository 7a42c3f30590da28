package team

import "context"

// TeamService defines business logic for team management.
type TeamService interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	Get(ctx context.Context, id string) (TeamResponse, error)
	List(ctx context.Context) ([]TeamResponse, error)
	Update(ctx context.Context, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, id string) error

	ListMembers(ctx context.Context, teamID string) ([]MemberResponse, error)
	AddMember(ctx context.Context, teamID string, req AddMemberRequest) error
	RemoveMember(ctx context.Context, teamID string, userID string) error
}
