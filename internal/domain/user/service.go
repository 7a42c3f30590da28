package user

import "context"

// UserService defines business logic for user management.
type UserService interface {
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)

	// ListAvailable retrieves active users not yet assigned to any team.
	ListAvailable(ctx context.Context) ([]UserResponse, error)

	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
}
