package invitation

import "errors"

var (
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationExpired   = errors.New("invitation has expired")
	ErrAlreadyProcessed    = errors.New("invitation has already been accepted or rejected")
	ErrEmailMismatch       = errors.New("your email does not match the invitation email")
	ErrEmailAlreadyInvited = errors.New("email already has a pending invitation")
)
