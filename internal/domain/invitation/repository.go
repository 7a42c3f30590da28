package invitation

import "context"

// InvitationRepository defines data access methods for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv Invitation) (Invitation, error)
	GetByID(ctx context.Context, id string) (Invitation, error)
	GetByToken(ctx context.Context, token string) (Invitation, error)

	// GetPendingByEmail retrieves a pending invitation for an email.
	// Returns nil when none exists.
	GetPendingByEmail(ctx context.Context, email string) (*Invitation, error)

	List(ctx context.Context) ([]Invitation, error)
	Update(ctx context.Context, inv Invitation) error
	Delete(ctx context.Context, id string) error

	CountPending(ctx context.Context) (int64, error)
}
