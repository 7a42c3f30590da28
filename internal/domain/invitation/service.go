package invitation

import "context"

// InvitationService defines business logic for invitations and
// management-level statistics.
type InvitationService interface {
	// Create issues an invitation and emails the invite link.
	Create(ctx context.Context, inviterID string, req CreateInvitationRequest) (InvitationResponse, error)

	List(ctx context.Context) ([]InvitationResponse, error)

	// Accept binds an invitation to the user owning the invited email.
	Accept(ctx context.Context, token string, userID string, userEmail string) error

	// Delete revokes a pending invitation.
	Delete(ctx context.Context, id string) error

	// Stats aggregates organization counters for the management dashboard.
	Stats(ctx context.Context) (StatsResponse, error)
}
