package invitation

import (
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type CreateInvitationRequest struct {
	Email  string  `json:"email"`
	Name   *string `json:"name,omitempty"`
	Role   string  `json:"role"`
	TeamID *string `json:"team_id,omitempty"`
}

func (r *CreateInvitationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Role != string(user.RoleManager) && r.Role != string(user.RoleMember) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be MANAGER or MEMBER",
		})
	}

	if r.TeamID != nil && !validator.IsValidUUID(*r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InviterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type InvitationResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      *string         `json:"name,omitempty"`
	Role      string          `json:"role"`
	Status    string          `json:"status"`
	TeamID    *string         `json:"team_id,omitempty"`
	TeamName  *string         `json:"team_name,omitempty"`
	InvitedBy InviterResponse `json:"invited_by"`
	InvitedAt string          `json:"invited_at"`
	ExpiresAt string          `json:"expires_at"`
}

// StatsResponse is the management dashboard summary.
type StatsResponse struct {
	TotalTeams         int64 `json:"total_teams"`
	TotalMembers       int64 `json:"total_members"`
	PendingInvitations int64 `json:"pending_invitations"`
	ActiveTeams        int64 `json:"active_teams"`
}
