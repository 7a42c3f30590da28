package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)

	// ListAvailable retrieves active users not yet assigned to any team
	ListAvailable(ctx context.Context) ([]User, error)

	Update(ctx context.Context, user User) error
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SetBalanceMinutes overwrites the accumulated hour bank for a user
	SetBalanceMinutes(ctx context.Context, id string, balanceMinutes int) error
}
