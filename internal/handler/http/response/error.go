package response

import (
	"errors"
	"net/http"

	"github.com/pontodigital/ponto-backend-go/internal/domain/auth"
	"github.com/pontodigital/ponto-backend-go/internal/domain/invitation"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/notification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		// The token's subject no longer exists; treat the session as invalid.
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrInvalidDate):
		BadRequest(w, "Invalid date: expected YYYY-MM-DD", nil)
	case errors.Is(err, timeentry.ErrInvalidEventType):
		BadRequest(w, "Unknown event type", nil)
	case errors.Is(err, timeentry.ErrEventAlreadyPunched):
		Conflict(w, "This punch has already been recorded today")
	case errors.Is(err, timeentry.ErrEntryExists):
		Conflict(w, "A time entry already exists for this date")
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this time entry")

	// Justification domain errors
	case errors.Is(err, justification.ErrTypeNotFound):
		NotFound(w, "Justification type not found")
	case errors.Is(err, justification.ErrTypeInUse):
		Conflict(w, "Justification type is in use")
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyProcessed):
		Conflict(w, "Justification already processed")
	case errors.Is(err, justification.ErrNotApplicable):
		BadRequest(w, "Justification type does not apply to this punch", nil)
	case errors.Is(err, justification.ErrSelfApproval):
		Forbidden(w, "Cannot approve your own justification")

	// Team domain errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "A team with this name already exists")
	case errors.Is(err, team.ErrAlreadyMember):
		Conflict(w, "User is already a member of this team")
	case errors.Is(err, team.ErrNotMember):
		NotFound(w, "User is not a member of this team")
	case errors.Is(err, team.ErrManagerRequired):
		BadRequest(w, "Team manager must have the manager role", nil)

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, "Invitation has expired")
	case errors.Is(err, invitation.ErrAlreadyProcessed):
		Conflict(w, "Invitation already processed")
	case errors.Is(err, invitation.ErrEmailMismatch):
		Forbidden(w, "Your email does not match the invitation email")
	case errors.Is(err, invitation.ErrEmailAlreadyInvited):
		Conflict(w, "Email already has a pending invitation")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
