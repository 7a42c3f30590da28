package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

const teamColumns = `
	t.id, t.name, t.description, t.manager_id, t.created_at, t.updated_at,
	u.name, u.email,
	(SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id)
`

const teamJoins = `
	FROM teams t
	JOIN users u ON u.id = t.manager_id
`

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.ManagerID, &t.CreatedAt, &t.UpdatedAt,
		&t.ManagerName, &t.ManagerEmail, &t.MemberCount,
	)
	return t, err
}

// Create implements team.TeamRepository.
func (r *teamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (name, description, manager_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.Description, t.ManagerID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	return t, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + teamColumns + teamJoins + ` WHERE t.id = $1`

	t, err := scanTeam(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team by id: %w", err)
	}

	return t, nil
}

// GetByName implements team.TeamRepository.
func (r *teamRepository) GetByName(ctx context.Context, name string) (*team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + teamColumns + teamJoins + ` WHERE LOWER(t.name) = LOWER($1)`

	t, err := scanTeam(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}

	return &t, nil
}

// List implements team.TeamRepository.
func (r *teamRepository) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + teamColumns + teamJoins + ` ORDER BY t.name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// Update implements team.TeamRepository.
func (r *teamRepository) Update(ctx context.Context, t team.Team) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = $2, description = $3, manager_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.Name, t.Description, t.ManagerID)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}

// Delete implements team.TeamRepository.
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}

// ListMembers implements team.TeamRepository.
func (r *teamRepository) ListMembers(ctx context.Context, teamID string) ([]team.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tm.user_id, tm.team_id, tm.joined_at, u.name, u.email, u.role
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []team.Member
	for rows.Next() {
		var m team.Member
		if err := rows.Scan(&m.UserID, &m.TeamID, &m.JoinedAt, &m.Name, &m.Email, &m.Role); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// AddMember implements team.TeamRepository.
func (r *teamRepository) AddMember(ctx context.Context, teamID string, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`

	if _, err := q.Exec(ctx, query, teamID, userID); err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}

	return nil
}

// RemoveMember implements team.TeamRepository.
func (r *teamRepository) RemoveMember(ctx context.Context, teamID string, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrNotMember
	}

	return nil
}

// IsMember implements team.TeamRepository.
func (r *teamRepository) IsMember(ctx context.Context, teamID string, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2)`
	if err := q.QueryRow(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check team membership: %w", err)
	}

	return exists, nil
}

// CountActive implements team.TeamRepository.
func (r *teamRepository) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(DISTINCT t.id)
		FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
	`
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active teams: %w", err)
	}

	return count, nil
}
