package justification

import (
	"context"
	"time"
)

// TypeRepository defines data access methods for the reason-code catalog.
type TypeRepository interface {
	Create(ctx context.Context, jt JustificationType) (JustificationType, error)
	GetByID(ctx context.Context, id string) (JustificationType, error)
	List(ctx context.Context) ([]JustificationType, error)
	Update(ctx context.Context, jt JustificationType) error
	Delete(ctx context.Context, id string) error
}

// JustificationFilter filters justification listings.
type JustificationFilter struct {
	UserID    *string
	StartDate *time.Time
	EndDate   *time.Time
	Status    *Status
}

// JustificationRepository defines data access methods for approval requests.
type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id string) (Justification, error)

	// GetByEntryAndType retrieves the request for one punch of one entry.
	// Returns nil when none exists.
	GetByEntryAndType(ctx context.Context, timeEntryID string, timeType string) (*Justification, error)

	List(ctx context.Context, filter JustificationFilter) ([]Justification, error)

	// ListPending retrieves undecided requests, oldest first.
	ListPending(ctx context.Context) ([]Justification, error)

	// ListByEntry retrieves all requests tied to one time entry.
	ListByEntry(ctx context.Context, timeEntryID string) ([]Justification, error)

	Update(ctx context.Context, j Justification) error

	// CountByType counts requests referencing a catalog reason code.
	CountByType(ctx context.Context, typeID string) (int64, error)
}
