package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

const justificationColumns = `
	j.id, j.time_entry_id, j.user_id, j.time_type, j.type_id, j.text,
	j.status, j.approver_id, j.decided_at, j.created_at, j.updated_at
`

func scanJustification(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID, &j.TimeEntryID, &j.UserID, &j.TimeType, &j.TypeID, &j.Text,
		&j.Status, &j.ApproverID, &j.DecidedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

func scanJustificationWithJoins(row pgx.Row) (justification.Justification, error) {
	var j justification.Justification
	err := row.Scan(
		&j.ID, &j.TimeEntryID, &j.UserID, &j.TimeType, &j.TypeID, &j.Text,
		&j.Status, &j.ApproverID, &j.DecidedAt, &j.CreatedAt, &j.UpdatedAt,
		&j.UserName, &j.ApproverName, &j.EntryDate,
	)
	return j, err
}

const justificationJoins = `
	FROM justifications j
	JOIN users u ON u.id = j.user_id
	LEFT JOIN users a ON a.id = j.approver_id
	JOIN time_entries te ON te.id = j.time_entry_id
`

// Create implements justification.JustificationRepository.
func (r *justificationRepository) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (time_entry_id, user_id, time_type, type_id, text, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		j.TimeEntryID, j.UserID, j.TimeType, j.TypeID, j.Text, j.Status,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	return j, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepository) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + `, u.name, a.name, te.date ` + justificationJoins + ` WHERE j.id = $1`

	j, err := scanJustificationWithJoins(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification by id: %w", err)
	}

	return j, nil
}

// GetByEntryAndType implements justification.JustificationRepository.
func (r *justificationRepository) GetByEntryAndType(ctx context.Context, timeEntryID string, timeType string) (*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications j
		WHERE j.time_entry_id = $1
		  AND j.time_type = $2
		ORDER BY j.created_at DESC
		LIMIT 1
	`

	j, err := scanJustification(q.QueryRow(ctx, query, timeEntryID, timeType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no request for this punch
		}
		return nil, fmt.Errorf("failed to get justification by entry and type: %w", err)
	}

	return &j, nil
}

// List implements justification.JustificationRepository.
func (r *justificationRepository) List(ctx context.Context, filter justification.JustificationFilter) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("j.user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("te.date >= $%d", argPos))
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("te.date < $%d", argPos))
		args = append(args, *filter.EndDate)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("j.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	query := `SELECT ` + justificationColumns + `, u.name, a.name, te.date ` + justificationJoins + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY j.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}
	defer rows.Close()

	var list []justification.Justification
	for rows.Next() {
		j, err := scanJustificationWithJoins(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		list = append(list, j)
	}

	return list, rows.Err()
}

// ListPending implements justification.JustificationRepository.
func (r *justificationRepository) ListPending(ctx context.Context) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + `, u.name, a.name, te.date ` + justificationJoins + `
		WHERE j.status = 'PENDING'
		ORDER BY j.created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending justifications: %w", err)
	}
	defer rows.Close()

	var list []justification.Justification
	for rows.Next() {
		j, err := scanJustificationWithJoins(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		list = append(list, j)
	}

	return list, rows.Err()
}

// ListByEntry implements justification.JustificationRepository.
func (r *justificationRepository) ListByEntry(ctx context.Context, timeEntryID string) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + `
		FROM justifications j
		WHERE j.time_entry_id = $1
		ORDER BY j.created_at
	`

	rows, err := q.Query(ctx, query, timeEntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications by entry: %w", err)
	}
	defer rows.Close()

	var list []justification.Justification
	for rows.Next() {
		j, err := scanJustification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		list = append(list, j)
	}

	return list, rows.Err()
}

// Update implements justification.JustificationRepository.
func (r *justificationRepository) Update(ctx context.Context, j justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET type_id = $2, text = $3, status = $4, approver_id = $5, decided_at = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, j.ID, j.TypeID, j.Text, j.Status, j.ApproverID, j.DecidedAt)
	if err != nil {
		return fmt.Errorf("failed to update justification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}

	return nil
}

// CountByType implements justification.JustificationRepository.
func (r *justificationRepository) CountByType(ctx context.Context, typeID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM justifications WHERE type_id = $1`, typeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count justifications by type: %w", err)
	}

	return count, nil
}
