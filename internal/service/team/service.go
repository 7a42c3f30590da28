package team

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type TeamServiceImpl struct {
	db *database.DB
	team.TeamRepository
	user.UserRepository
}

func mapMemberToResponse(m team.Member) team.MemberResponse {
	return team.MemberResponse{
		ID:       m.UserID,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
		JoinedAt: m.JoinedAt.UTC().Format(time.RFC3339),
	}
}

func mapTeamToResponse(t team.Team, members []team.Member) team.TeamResponse {
	manager := team.ManagerResponse{ID: t.ManagerID}
	if t.ManagerName != nil {
		manager.Name = *t.ManagerName
	}
	if t.ManagerEmail != nil {
		manager.Email = *t.ManagerEmail
	}

	resp := team.TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Manager:     manager,
		MemberCount: t.MemberCount,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if members != nil {
		resp.Members = make([]team.MemberResponse, 0, len(members))
		for i := range members {
			resp.Members = append(resp.Members, mapMemberToResponse(members[i]))
		}
		resp.MemberCount = len(members)
	}

	return resp
}

// requireManager checks the designated manager exists and holds the role.
func (s *TeamServiceImpl) requireManager(ctx context.Context, managerID string) error {
	managerData, err := s.UserRepository.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get manager by id: %w", err)
	}
	if !managerData.IsManager() {
		return team.ErrManagerRequired
	}
	return nil
}

// Create implements team.TeamService.
func (s *TeamServiceImpl) Create(ctx context.Context, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	existing, err := s.TeamRepository.GetByName(ctx, req.Name)
	if err != nil {
		return team.TeamResponse{}, fmt.Errorf("failed to get team by name: %w", err)
	}
	if existing != nil {
		return team.TeamResponse{}, team.ErrTeamNameExists
	}

	if err := s.requireManager(ctx, req.ManagerID); err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.TeamRepository.Create(ctx, team.Team{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return team.TeamResponse{}, fmt.Errorf("failed to create team: %w", err)
	}

	return mapTeamToResponse(created, nil), nil
}

// Get implements team.TeamService.
func (s *TeamServiceImpl) Get(ctx context.Context, id string) (team.TeamResponse, error) {
	t, err := s.TeamRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return team.TeamResponse{}, team.ErrTeamNotFound
		}
		return team.TeamResponse{}, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.TeamRepository.ListMembers(ctx, id)
	if err != nil {
		return team.TeamResponse{}, fmt.Errorf("failed to list team members: %w", err)
	}

	return mapTeamToResponse(t, members), nil
}

// List implements team.TeamService.
func (s *TeamServiceImpl) List(ctx context.Context) ([]team.TeamResponse, error) {
	teams, err := s.TeamRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, mapTeamToResponse(teams[i], nil))
	}

	return responses, nil
}

// Update implements team.TeamService.
func (s *TeamServiceImpl) Update(ctx context.Context, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	t, err := s.TeamRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return team.TeamResponse{}, team.ErrTeamNotFound
		}
		return team.TeamResponse{}, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil && *req.Name != t.Name {
		existing, err := s.TeamRepository.GetByName(ctx, *req.Name)
		if err != nil {
			return team.TeamResponse{}, fmt.Errorf("failed to get team by name: %w", err)
		}
		if existing != nil {
			return team.TeamResponse{}, team.ErrTeamNameExists
		}
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.ManagerID != nil && *req.ManagerID != t.ManagerID {
		if err := s.requireManager(ctx, *req.ManagerID); err != nil {
			return team.TeamResponse{}, err
		}
		t.ManagerID = *req.ManagerID
	}

	if err := s.TeamRepository.Update(ctx, t); err != nil {
		return team.TeamResponse{}, fmt.Errorf("failed to update team: %w", err)
	}

	updated, err := s.TeamRepository.GetByID(ctx, req.ID)
	if err != nil {
		return team.TeamResponse{}, fmt.Errorf("failed to get updated team: %w", err)
	}

	return mapTeamToResponse(updated, nil), nil
}

// Delete implements team.TeamService.
func (s *TeamServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.TeamRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return team.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// ListMembers implements team.TeamService.
func (s *TeamServiceImpl) ListMembers(ctx context.Context, teamID string) ([]team.MemberResponse, error) {
	if _, err := s.TeamRepository.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return nil, team.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.TeamRepository.ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]team.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, mapMemberToResponse(members[i]))
	}

	return responses, nil
}

// AddMember implements team.TeamService.
func (s *TeamServiceImpl) AddMember(ctx context.Context, teamID string, req team.AddMemberRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.TeamRepository.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return team.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if _, err := s.UserRepository.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	isMember, err := s.TeamRepository.IsMember(ctx, teamID, req.UserID)
	if err != nil {
		return fmt.Errorf("failed to check team membership: %w", err)
	}
	if isMember {
		return team.ErrAlreadyMember
	}

	if err := s.TeamRepository.AddMember(ctx, teamID, req.UserID); err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}

	return nil
}

// RemoveMember implements team.TeamService.
func (s *TeamServiceImpl) RemoveMember(ctx context.Context, teamID string, userID string) error {
	isMember, err := s.TeamRepository.IsMember(ctx, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check team membership: %w", err)
	}
	if !isMember {
		return team.ErrNotMember
	}

	if err := s.TeamRepository.RemoveMember(ctx, teamID, userID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}

	return nil
}

func NewTeamService(db *database.DB, teamRepo team.TeamRepository, userRepo user.UserRepository) team.TeamService {
	return &TeamServiceImpl{
		db:             db,
		TeamRepository: teamRepo,
		UserRepository: userRepo,
	}
}
