package justification

import (
	"context"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
)

// TypeService defines business logic for the reason-code catalog.
type TypeService interface {
	CreateType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error)
	GetType(ctx context.Context, id string) (TypeResponse, error)

	// ListTypes returns only the entries visible to the given role.
	ListTypes(ctx context.Context, role user.Role) ([]TypeResponse, error)

	UpdateType(ctx context.Context, req UpdateTypeRequest) (TypeResponse, error)
	DeleteType(ctx context.Context, id string) error
}

// JustificationService defines business logic for the approval workflow.
type JustificationService interface {
	// Create submits a justification request for one out-of-tolerance punch.
	Create(ctx context.Context, userID string, req CreateJustificationRequest) (JustificationResponse, error)

	Get(ctx context.Context, id string) (JustificationResponse, error)

	ListByUser(ctx context.Context, userID string, startDate, endDate *time.Time) ([]JustificationResponse, error)

	// ListPending lists undecided requests for the manager inbox.
	ListPending(ctx context.Context) ([]JustificationResponse, error)

	// Approve transitions PENDING -> APPROVED and re-derives the entry status.
	Approve(ctx context.Context, id string, approverID string) (JustificationResponse, error)

	// Reject transitions PENDING -> REJECTED and re-derives the entry status.
	Reject(ctx context.Context, id string, approverID string) (JustificationResponse, error)
}
