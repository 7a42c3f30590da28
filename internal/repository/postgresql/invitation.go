package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/invitation"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type invitationRepository struct {
	db *database.DB
}

func NewInvitationRepository(db *database.DB) invitation.InvitationRepository {
	return &invitationRepository{db: db}
}

const invitationColumns = `
	i.id, i.email, i.name, i.role, i.team_id, i.status, i.token, i.invited_by,
	i.expires_at, i.accepted_at, i.created_at, i.updated_at,
	u.name, u.email, t.name
`

const invitationJoins = `
	FROM invitations i
	JOIN users u ON u.id = i.invited_by
	LEFT JOIN teams t ON t.id = i.team_id
`

func scanInvitation(row pgx.Row) (invitation.Invitation, error) {
	var inv invitation.Invitation
	err := row.Scan(
		&inv.ID, &inv.Email, &inv.Name, &inv.Role, &inv.TeamID, &inv.Status, &inv.Token, &inv.InvitedBy,
		&inv.ExpiresAt, &inv.AcceptedAt, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.InviterName, &inv.InviterEmail, &inv.TeamName,
	)
	return inv, err
}

// Create implements invitation.InvitationRepository.
func (r *invitationRepository) Create(ctx context.Context, inv invitation.Invitation) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitations (email, name, role, team_id, status, token, invited_by, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		inv.Email, inv.Name, inv.Role, inv.TeamID, inv.Status, inv.Token, inv.InvitedBy, inv.ExpiresAt,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return invitation.Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}

	return inv, nil
}

// GetByID implements invitation.InvitationRepository.
func (r *invitationRepository) GetByID(ctx context.Context, id string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + invitationJoins + ` WHERE i.id = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by id: %w", err)
	}

	return inv, nil
}

// GetByToken implements invitation.InvitationRepository.
func (r *invitationRepository) GetByToken(ctx context.Context, token string) (invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + invitationJoins + ` WHERE i.token = $1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return invitation.Invitation{}, invitation.ErrInvitationNotFound
		}
		return invitation.Invitation{}, fmt.Errorf("failed to get invitation by token: %w", err)
	}

	return inv, nil
}

// GetPendingByEmail implements invitation.InvitationRepository.
func (r *invitationRepository) GetPendingByEmail(ctx context.Context, email string) (*invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + invitationJoins + `
		WHERE LOWER(i.email) = LOWER($1)
		  AND i.status = 'PENDING'
		ORDER BY i.created_at DESC
		LIMIT 1`

	inv, err := scanInvitation(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending invitation by email: %w", err)
	}

	return &inv, nil
}

// List implements invitation.InvitationRepository.
func (r *invitationRepository) List(ctx context.Context) ([]invitation.Invitation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + invitationColumns + invitationJoins + ` ORDER BY i.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []invitation.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	return invitations, rows.Err()
}

// Update implements invitation.InvitationRepository.
func (r *invitationRepository) Update(ctx context.Context, inv invitation.Invitation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitations
		SET status = $2, accepted_at = $3, expires_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, inv.ID, inv.Status, inv.AcceptedAt, inv.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}

	return nil
}

// Delete implements invitation.InvitationRepository.
func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invitation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrInvitationNotFound
	}

	return nil
}

// CountPending implements invitation.InvitationRepository.
func (r *invitationRepository) CountPending(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM invitations WHERE status = 'PENDING' AND expires_at > NOW()`
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending invitations: %w", err)
	}

	return count, nil
}
