package timeentry

import (
	"context"
)

// TimeEntryService defines business logic for punch-clock operations.
type TimeEntryService interface {
	// Punch records a single clock event for the authenticated user, creating
	// the day's entry on the first punch and re-deriving its status.
	Punch(ctx context.Context, req PunchRequest) (TimeEntryResponse, error)

	// CreateRetroactive records a full entry for a past date. Conflicts if an
	// entry already exists for that user and date.
	CreateRetroactive(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)

	// GetToday retrieves the authenticated user's entry for the current day.
	GetToday(ctx context.Context, userID string) (TimeEntryResponse, error)

	// GetByDate retrieves a user's entry on a specific day.
	GetByDate(ctx context.Context, userID string, date string) (TimeEntryResponse, error)

	// ListByCompetence retrieves a user's entries for a "YYYY-MM" month,
	// with calendar markers.
	ListByCompetence(ctx context.Context, userID string, competence string) (ListTimeEntryResponse, error)

	// List retrieves entries across users with filters (manager view).
	List(ctx context.Context, filter TimeEntryFilter) (ListTimeEntryResponse, error)

	// ListByTeam retrieves all team members' entries for a "YYYY-MM" month.
	ListByTeam(ctx context.Context, teamID string, competence string) (ListTimeEntryResponse, error)

	Get(ctx context.Context, id string) (TimeEntryResponse, error)

	// Update fixes a recorded entry (manager correction).
	Update(ctx context.Context, req UpdateTimeEntryRequest) (TimeEntryResponse, error)

	// Delete removes an entry (admin correction).
	Delete(ctx context.Context, id string) error
}
