package timeentry

import (
	"context"
	"time"
)

// TimeEntryFilter filters the organization-wide listing (manager view).
type TimeEntryFilter struct {
	UserID   *string
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *string
	Page     int
	Limit    int
}

// TimeEntryRepository defines data access methods for time entries.
type TimeEntryRepository interface {
	// Create creates a new time entry. The (user_id, date) pair is unique;
	// violating it surfaces as a conflict to the caller.
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	GetByID(ctx context.Context, id string) (TimeEntry, error)

	// GetByUserAndDate retrieves the single entry for a user on a civil day.
	// Returns nil when no entry exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*TimeEntry, error)

	Update(ctx context.Context, entry TimeEntry) error

	Delete(ctx context.Context, id string) error

	// ListByUser retrieves entries for one user inside [from, to).
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]TimeEntry, error)

	// List retrieves entries with filters and pagination, joined with user data.
	List(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, int64, error)

	// ListByTeam retrieves entries of all team members inside [from, to).
	ListByTeam(ctx context.Context, teamID string, from, to time.Time) ([]TimeEntry, error)
}
