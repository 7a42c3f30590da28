package notification

import (
	"context"
)

// Service defines the notification service interface
type Service interface {
	// Notify persists a notification and pushes it to live SSE subscribers
	Notify(ctx context.Context, req CreateNotificationRequest) error

	GetNotifications(ctx context.Context, userID string, page, pageSize int, unreadOnly bool) (*NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, userID string, req MarkAsReadRequest) error
	MarkAllAsRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string, notificationID string) error

	// Subscribe registers an SSE subscription for a user
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())
}
