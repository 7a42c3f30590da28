package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeJustificationSubmitted NotificationType = "justification_submitted"
	TypeJustificationApproved  NotificationType = "justification_approved"
	TypeJustificationRejected  NotificationType = "justification_rejected"
	TypeInvitationSent         NotificationType = "invitation_sent"
	TypeMemberJoined           NotificationType = "member_joined"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
