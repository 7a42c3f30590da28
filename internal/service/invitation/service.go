package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pontodigital/ponto-backend-go/internal/config"
	"github.com/pontodigital/ponto-backend-go/internal/domain/invitation"
	"github.com/pontodigital/ponto-backend-go/internal/domain/notification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/email"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
)

type InvitationServiceImpl struct {
	db *database.DB
	invitation.InvitationRepository
	user.UserRepository
	team.TeamRepository
	emailService        email.EmailService
	notificationService notification.Service
	appBaseURL          string
	expiration          time.Duration
}

func mapInvitationToResponse(inv invitation.Invitation) invitation.InvitationResponse {
	inviter := invitation.InviterResponse{ID: inv.InvitedBy}
	if inv.InviterName != nil {
		inviter.Name = *inv.InviterName
	}
	if inv.InviterEmail != nil {
		inviter.Email = *inv.InviterEmail
	}

	return invitation.InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Name:      inv.Name,
		Role:      inv.Role,
		Status:    string(inv.Status),
		TeamID:    inv.TeamID,
		TeamName:  inv.TeamName,
		InvitedBy: inviter,
		InvitedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt: inv.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// Create implements invitation.InvitationService.
func (s *InvitationServiceImpl) Create(ctx context.Context, inviterID string, req invitation.CreateInvitationRequest) (invitation.InvitationResponse, error) {
	if err := req.Validate(); err != nil {
		return invitation.InvitationResponse{}, err
	}

	pending, err := s.InvitationRepository.GetPendingByEmail(ctx, req.Email)
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to get pending invitation by email: %w", err)
	}
	if pending != nil && !pending.IsExpired() {
		return invitation.InvitationResponse{}, invitation.ErrEmailAlreadyInvited
	}

	var teamName *string
	if req.TeamID != nil {
		teamData, err := s.TeamRepository.GetByID(ctx, *req.TeamID)
		if err != nil {
			if errors.Is(err, team.ErrTeamNotFound) {
				return invitation.InvitationResponse{}, team.ErrTeamNotFound
			}
			return invitation.InvitationResponse{}, fmt.Errorf("failed to get team: %w", err)
		}
		teamName = &teamData.Name
	}

	inviter, err := s.UserRepository.GetByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return invitation.InvitationResponse{}, user.ErrUserNotFound
		}
		return invitation.InvitationResponse{}, fmt.Errorf("failed to get inviter: %w", err)
	}

	created, err := s.InvitationRepository.Create(ctx, invitation.Invitation{
		Email:     req.Email,
		Name:      req.Name,
		Role:      req.Role,
		TeamID:    req.TeamID,
		Status:    invitation.StatusPending,
		Token:     uuid.New().String(),
		InvitedBy: inviterID,
		ExpiresAt: time.Now().UTC().Add(s.expiration),
	})
	if err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	inviteeName := ""
	if req.Name != nil {
		inviteeName = *req.Name
	}
	invitationLink := fmt.Sprintf("%s/convite/%s", s.appBaseURL, created.Token)
	if err := s.emailService.SendInvitation(
		created.Email,
		inviteeName,
		inviter.Name,
		teamName,
		invitationLink,
		timeutil.FormatDateBR(created.ExpiresAt),
	); err != nil {
		return invitation.InvitationResponse{}, fmt.Errorf("failed to send invitation email: %w", err)
	}

	created.InviterName = &inviter.Name
	created.InviterEmail = &inviter.Email
	created.TeamName = teamName

	return mapInvitationToResponse(created), nil
}

// List implements invitation.InvitationService.
func (s *InvitationServiceImpl) List(ctx context.Context) ([]invitation.InvitationResponse, error) {
	invitations, err := s.InvitationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]invitation.InvitationResponse, 0, len(invitations))
	for i := range invitations {
		responses = append(responses, mapInvitationToResponse(invitations[i]))
	}

	return responses, nil
}

// Accept implements invitation.InvitationService.
func (s *InvitationServiceImpl) Accept(ctx context.Context, token string, userID string, userEmail string) error {
	inv, err := s.InvitationRepository.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, invitation.ErrInvitationNotFound) {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation by token: %w", err)
	}

	if inv.Status != invitation.StatusPending {
		return invitation.ErrAlreadyProcessed
	}
	if inv.IsExpired() {
		return invitation.ErrInvitationExpired
	}
	if inv.Email != userEmail {
		return invitation.ErrEmailMismatch
	}

	now := time.Now().UTC()
	inv.Status = invitation.StatusAccepted
	inv.AcceptedAt = &now

	if err := s.InvitationRepository.Update(ctx, inv); err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	if inv.TeamID != nil {
		isMember, err := s.TeamRepository.IsMember(ctx, *inv.TeamID, userID)
		if err != nil {
			return fmt.Errorf("failed to check team membership: %w", err)
		}
		if !isMember {
			if err := s.TeamRepository.AddMember(ctx, *inv.TeamID, userID); err != nil {
				return fmt.Errorf("failed to add team member: %w", err)
			}
		}
	}

	_ = s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: inv.InvitedBy,
		SenderID:    &userID,
		Type:        notification.TypeMemberJoined,
		Title:       "Convite aceito",
		Message:     fmt.Sprintf("%s aceitou o convite", inv.Email),
		Data:        map[string]interface{}{"invitation_id": inv.ID},
	})

	return nil
}

// Delete implements invitation.InvitationService.
func (s *InvitationServiceImpl) Delete(ctx context.Context, id string) error {
	inv, err := s.InvitationRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, invitation.ErrInvitationNotFound) {
			return invitation.ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}

	if inv.Status != invitation.StatusPending {
		return invitation.ErrAlreadyProcessed
	}

	if err := s.InvitationRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}

// Stats implements invitation.InvitationService.
func (s *InvitationServiceImpl) Stats(ctx context.Context) (invitation.StatsResponse, error) {
	teams, err := s.TeamRepository.List(ctx)
	if err != nil {
		return invitation.StatsResponse{}, fmt.Errorf("failed to list teams: %w", err)
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return invitation.StatsResponse{}, fmt.Errorf("failed to list users: %w", err)
	}
	var totalMembers int64
	for i := range users {
		if users[i].IsActive() {
			totalMembers++
		}
	}

	pendingInvitations, err := s.InvitationRepository.CountPending(ctx)
	if err != nil {
		return invitation.StatsResponse{}, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	activeTeams, err := s.TeamRepository.CountActive(ctx)
	if err != nil {
		return invitation.StatsResponse{}, fmt.Errorf("failed to count active teams: %w", err)
	}

	return invitation.StatsResponse{
		TotalTeams:         int64(len(teams)),
		TotalMembers:       totalMembers,
		PendingInvitations: pendingInvitations,
		ActiveTeams:        activeTeams,
	}, nil
}

func NewInvitationService(
	db *database.DB,
	invitationRepo invitation.InvitationRepository,
	userRepo user.UserRepository,
	teamRepo team.TeamRepository,
	emailService email.EmailService,
	notificationService notification.Service,
	appBaseURL string,
	invitationCfg config.InvitationConfig,
) invitation.InvitationService {
	return &InvitationServiceImpl{
		db:                   db,
		InvitationRepository: invitationRepo,
		UserRepository:       userRepo,
		TeamRepository:       teamRepo,
		emailService:         emailService,
		notificationService:  notificationService,
		appBaseURL:           appBaseURL,
		expiration:           time.Duration(invitationCfg.ExpirationHours) * time.Hour,
	}
}
