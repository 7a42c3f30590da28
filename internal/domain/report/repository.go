package report

import (
	"context"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
)

// Repository defines data access for report aggregation.
type Repository interface {
	// ListUsersInScope retrieves active users, restricted to one team when
	// teamID is non-nil.
	ListUsersInScope(ctx context.Context, teamID *string) ([]user.User, error)

	// ListEntriesInScope retrieves time entries inside [from, to), restricted
	// to one team when teamID is non-nil.
	ListEntriesInScope(ctx context.Context, teamID *string, from, to time.Time) ([]timeentry.TimeEntry, error)
}
