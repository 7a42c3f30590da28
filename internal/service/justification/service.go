package justification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/notification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
	"github.com/pontodigital/ponto-backend-go/internal/repository/postgresql"
	timeentrysvc "github.com/pontodigital/ponto-backend-go/internal/service/timeentry"
)

// ========================================
// REASON-CODE CATALOG
// ========================================

type TypeServiceImpl struct {
	db *database.DB
	justification.TypeRepository
	justification.JustificationRepository
}

func mapTypeToResponse(jt justification.JustificationType) justification.TypeResponse {
	return justification.TypeResponse{
		ID:            jt.ID,
		TimeType:      jt.TimeType,
		Justification: jt.Justification,
		Abonable:      jt.Abonable,
		Discountable:  jt.Discountable,
		Absence:       jt.Absence,
	}
}

// CreateType implements justification.TypeService.
func (s *TypeServiceImpl) CreateType(ctx context.Context, req justification.CreateTypeRequest) (justification.TypeResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.TypeResponse{}, err
	}

	created, err := s.TypeRepository.Create(ctx, justification.JustificationType{
		TimeType:      req.TimeType,
		Justification: req.Justification,
		Abonable:      req.Abonable,
		Discountable:  req.Discountable,
		Absence:       req.Absence,
	})
	if err != nil {
		return justification.TypeResponse{}, fmt.Errorf("failed to create justification type: %w", err)
	}

	return mapTypeToResponse(created), nil
}

// GetType implements justification.TypeService.
func (s *TypeServiceImpl) GetType(ctx context.Context, id string) (justification.TypeResponse, error) {
	jt, err := s.TypeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, justification.ErrTypeNotFound) {
			return justification.TypeResponse{}, justification.ErrTypeNotFound
		}
		return justification.TypeResponse{}, fmt.Errorf("failed to get justification type: %w", err)
	}

	return mapTypeToResponse(jt), nil
}

// ListTypes implements justification.TypeService. Codes restricted to
// managers are filtered out for members.
func (s *TypeServiceImpl) ListTypes(ctx context.Context, role user.Role) ([]justification.TypeResponse, error) {
	types, err := s.TypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list justification types: %w", err)
	}

	responses := make([]justification.TypeResponse, 0, len(types))
	for i := range types {
		if !types[i].VisibleTo(role) {
			continue
		}
		responses = append(responses, mapTypeToResponse(types[i]))
	}

	return responses, nil
}

// UpdateType implements justification.TypeService.
func (s *TypeServiceImpl) UpdateType(ctx context.Context, req justification.UpdateTypeRequest) (justification.TypeResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.TypeResponse{}, err
	}

	jt, err := s.TypeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, justification.ErrTypeNotFound) {
			return justification.TypeResponse{}, justification.ErrTypeNotFound
		}
		return justification.TypeResponse{}, fmt.Errorf("failed to get justification type: %w", err)
	}

	jt.TimeType = req.TimeType
	jt.Justification = req.Justification
	jt.Abonable = req.Abonable
	jt.Discountable = req.Discountable
	jt.Absence = req.Absence

	if err := s.TypeRepository.Update(ctx, jt); err != nil {
		return justification.TypeResponse{}, fmt.Errorf("failed to update justification type: %w", err)
	}

	return mapTypeToResponse(jt), nil
}

// DeleteType implements justification.TypeService. Codes referenced by
// existing requests cannot be removed.
func (s *TypeServiceImpl) DeleteType(ctx context.Context, id string) error {
	inUse, err := s.JustificationRepository.CountByType(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count justifications by type: %w", err)
	}
	if inUse > 0 {
		return justification.ErrTypeInUse
	}

	if err := s.TypeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, justification.ErrTypeNotFound) {
			return justification.ErrTypeNotFound
		}
		return fmt.Errorf("failed to delete justification type: %w", err)
	}

	return nil
}

func NewTypeService(
	db *database.DB,
	typeRepo justification.TypeRepository,
	justificationRepo justification.JustificationRepository,
) justification.TypeService {
	return &TypeServiceImpl{
		db:                      db,
		TypeRepository:          typeRepo,
		JustificationRepository: justificationRepo,
	}
}

// ========================================
// APPROVAL WORKFLOW
// ========================================

type JustificationServiceImpl struct {
	db *database.DB
	justification.JustificationRepository
	justification.TypeRepository
	timeentry.TimeEntryRepository
	user.UserRepository
	notificationService notification.Service
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func mapJustificationToResponse(j justification.Justification) justification.JustificationResponse {
	var entryDate *string
	if j.EntryDate != nil {
		formatted := timeutil.FormatDate(*j.EntryDate)
		entryDate = &formatted
	}

	return justification.JustificationResponse{
		ID:           j.ID,
		TimeEntryID:  j.TimeEntryID,
		UserID:       j.UserID,
		UserName:     j.UserName,
		EntryDate:    entryDate,
		TimeType:     string(j.TimeType),
		TypeID:       j.TypeID,
		Text:         j.Text,
		Status:       string(j.Status),
		ApproverID:   j.ApproverID,
		ApproverName: j.ApproverName,
		DecidedAt:    timePtrToString(j.DecidedAt),
		CreatedAt:    j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// refreshEntryStatus re-derives the owning entry's status after a request
// changes state, so the calendar reflects the decision immediately.
func (s *JustificationServiceImpl) refreshEntryStatus(ctx context.Context, timeEntryID string) error {
	entry, err := s.TimeEntryRepository.GetByID(ctx, timeEntryID)
	if err != nil {
		return fmt.Errorf("failed to get time entry: %w", err)
	}

	requests, err := s.JustificationRepository.ListByEntry(ctx, timeEntryID)
	if err != nil {
		return fmt.Errorf("failed to list justifications for entry: %w", err)
	}

	status, err := timeentrysvc.DeriveStatus(&entry, requests)
	if err != nil {
		return err
	}

	if status != entry.Status {
		entry.Status = status
		if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update time entry status: %w", err)
		}
	}

	return nil
}

// notifyManagers fans one notification out to every active manager.
func (s *JustificationServiceImpl) notifyManagers(ctx context.Context, senderID string, notificationType notification.NotificationType, title, message string, data map[string]interface{}) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return
	}

	for i := range users {
		if !users[i].IsManager() || !users[i].IsActive() || users[i].ID == senderID {
			continue
		}
		_ = s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
			RecipientID: users[i].ID,
			SenderID:    &senderID,
			Type:        notificationType,
			Title:       title,
			Message:     message,
			Data:        data,
		})
	}
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, userID string, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	entry, err := s.TimeEntryRepository.GetByID(ctx, req.TimeEntryID)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return justification.JustificationResponse{}, timeentry.ErrEntryNotFound
		}
		return justification.JustificationResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	if entry.UserID != userID {
		return justification.JustificationResponse{}, timeentry.ErrUnauthorized
	}

	eventType := timeentry.EventType(req.TimeType)

	if req.TypeID != nil {
		jt, err := s.TypeRepository.GetByID(ctx, *req.TypeID)
		if err != nil {
			if errors.Is(err, justification.ErrTypeNotFound) {
				return justification.JustificationResponse{}, justification.ErrTypeNotFound
			}
			return justification.JustificationResponse{}, fmt.Errorf("failed to get justification type: %w", err)
		}
		if !jt.AppliesTo(eventType) {
			return justification.JustificationResponse{}, justification.ErrNotApplicable
		}
	}

	existing, err := s.JustificationRepository.GetByEntryAndType(ctx, req.TimeEntryID, req.TimeType)
	if err != nil {
		return justification.JustificationResponse{}, fmt.Errorf("failed to get justification by entry and type: %w", err)
	}
	if existing != nil && existing.IsDecided() {
		return justification.JustificationResponse{}, justification.ErrAlreadyProcessed
	}

	// The request, the entry's justification text and the re-derived status
	// land together or not at all.
	var result justification.Justification
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if existing != nil {
			// Resubmission replaces the pending text.
			existing.TypeID = req.TypeID
			existing.Text = req.Text
			if err := s.JustificationRepository.Update(txCtx, *existing); err != nil {
				return fmt.Errorf("failed to update justification: %w", err)
			}
			result = *existing
		} else {
			created, err := s.JustificationRepository.Create(txCtx, justification.Justification{
				TimeEntryID: req.TimeEntryID,
				UserID:      userID,
				TimeType:    eventType,
				TypeID:      req.TypeID,
				Text:        req.Text,
				Status:      justification.StatusPending,
			})
			if err != nil {
				return fmt.Errorf("failed to create justification: %w", err)
			}
			result = created
		}

		text := req.Text
		entry.SetJustification(eventType, &text)
		if err := s.TimeEntryRepository.Update(txCtx, entry); err != nil {
			return fmt.Errorf("failed to update time entry: %w", err)
		}

		return s.refreshEntryStatus(txCtx, req.TimeEntryID)
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	s.notifyManagers(ctx, userID, notification.TypeJustificationSubmitted,
		"Nova justificativa",
		fmt.Sprintf("Justificativa enviada para %s", timeutil.FormatDateBR(entry.Date)),
		map[string]interface{}{"justification_id": result.ID, "time_entry_id": entry.ID},
	)

	return mapJustificationToResponse(result), nil
}

// Get implements justification.JustificationService.
func (s *JustificationServiceImpl) Get(ctx context.Context, id string) (justification.JustificationResponse, error) {
	j, err := s.JustificationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, justification.ErrJustificationNotFound) {
			return justification.JustificationResponse{}, justification.ErrJustificationNotFound
		}
		return justification.JustificationResponse{}, fmt.Errorf("failed to get justification: %w", err)
	}

	return mapJustificationToResponse(j), nil
}

// ListByUser implements justification.JustificationService.
func (s *JustificationServiceImpl) ListByUser(ctx context.Context, userID string, startDate, endDate *time.Time) ([]justification.JustificationResponse, error) {
	list, err := s.JustificationRepository.List(ctx, justification.JustificationFilter{
		UserID:    &userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}

	responses := make([]justification.JustificationResponse, 0, len(list))
	for i := range list {
		responses = append(responses, mapJustificationToResponse(list[i]))
	}

	return responses, nil
}

// ListPending implements justification.JustificationService.
func (s *JustificationServiceImpl) ListPending(ctx context.Context) ([]justification.JustificationResponse, error) {
	list, err := s.JustificationRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}

	responses := make([]justification.JustificationResponse, 0, len(list))
	for i := range list {
		responses = append(responses, mapJustificationToResponse(list[i]))
	}

	return responses, nil
}

func (s *JustificationServiceImpl) decide(ctx context.Context, id string, approverID string, status justification.Status, notificationType notification.NotificationType, title string) (justification.JustificationResponse, error) {
	j, err := s.JustificationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, justification.ErrJustificationNotFound) {
			return justification.JustificationResponse{}, justification.ErrJustificationNotFound
		}
		return justification.JustificationResponse{}, fmt.Errorf("failed to get justification: %w", err)
	}

	if j.IsDecided() {
		return justification.JustificationResponse{}, justification.ErrAlreadyProcessed
	}
	if j.UserID == approverID {
		return justification.JustificationResponse{}, justification.ErrSelfApproval
	}

	now := time.Now().UTC()
	j.Status = status
	j.ApproverID = &approverID
	j.DecidedAt = &now

	// The decision and the entry's re-derived status commit together.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.JustificationRepository.Update(txCtx, j); err != nil {
			return fmt.Errorf("failed to update justification: %w", err)
		}

		return s.refreshEntryStatus(txCtx, j.TimeEntryID)
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	_ = s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: j.UserID,
		SenderID:    &approverID,
		Type:        notificationType,
		Title:       title,
		Message:     j.Text,
		Data:        map[string]interface{}{"justification_id": j.ID, "time_entry_id": j.TimeEntryID},
	})

	return mapJustificationToResponse(j), nil
}

// Approve implements justification.JustificationService.
func (s *JustificationServiceImpl) Approve(ctx context.Context, id string, approverID string) (justification.JustificationResponse, error) {
	return s.decide(ctx, id, approverID, justification.StatusApproved,
		notification.TypeJustificationApproved, "Justificativa aprovada")
}

// Reject implements justification.JustificationService.
func (s *JustificationServiceImpl) Reject(ctx context.Context, id string, approverID string) (justification.JustificationResponse, error) {
	return s.decide(ctx, id, approverID, justification.StatusRejected,
		notification.TypeJustificationRejected, "Justificativa rejeitada")
}

func NewJustificationService(
	db *database.DB,
	justificationRepo justification.JustificationRepository,
	typeRepo justification.TypeRepository,
	entryRepo timeentry.TimeEntryRepository,
	userRepo user.UserRepository,
	notificationService notification.Service,
) justification.JustificationService {
	return &JustificationServiceImpl{
		db:                      db,
		JustificationRepository: justificationRepo,
		TypeRepository:          typeRepo,
		TimeEntryRepository:     entryRepo,
		UserRepository:          userRepo,
		notificationService:     notificationService,
	}
}
