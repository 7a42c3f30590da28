package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type justificationTypeRepository struct {
	db *database.DB
}

func NewJustificationTypeRepository(db *database.DB) justification.TypeRepository {
	return &justificationTypeRepository{db: db}
}

const justificationTypeColumns = `
	id, time_type, justification, abonable, discountable, absence, created_at, updated_at
`

func scanJustificationType(row pgx.Row) (justification.JustificationType, error) {
	var jt justification.JustificationType
	err := row.Scan(
		&jt.ID, &jt.TimeType, &jt.Justification,
		&jt.Abonable, &jt.Discountable, &jt.Absence,
		&jt.CreatedAt, &jt.UpdatedAt,
	)
	return jt, err
}

// Create implements justification.TypeRepository.
func (r *justificationTypeRepository) Create(ctx context.Context, jt justification.JustificationType) (justification.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justification_types (time_type, justification, abonable, discountable, absence)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		jt.TimeType, jt.Justification, jt.Abonable, jt.Discountable, jt.Absence,
	).Scan(&jt.ID, &jt.CreatedAt, &jt.UpdatedAt)
	if err != nil {
		return justification.JustificationType{}, fmt.Errorf("failed to create justification type: %w", err)
	}

	return jt, nil
}

// GetByID implements justification.TypeRepository.
func (r *justificationTypeRepository) GetByID(ctx context.Context, id string) (justification.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationTypeColumns + ` FROM justification_types WHERE id = $1`

	jt, err := scanJustificationType(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return justification.JustificationType{}, justification.ErrTypeNotFound
		}
		return justification.JustificationType{}, fmt.Errorf("failed to get justification type: %w", err)
	}

	return jt, nil
}

// List implements justification.TypeRepository.
func (r *justificationTypeRepository) List(ctx context.Context) ([]justification.JustificationType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationTypeColumns + ` FROM justification_types ORDER BY justification`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list justification types: %w", err)
	}
	defer rows.Close()

	var types []justification.JustificationType
	for rows.Next() {
		jt, err := scanJustificationType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification type: %w", err)
		}
		types = append(types, jt)
	}

	return types, rows.Err()
}

// Update implements justification.TypeRepository.
func (r *justificationTypeRepository) Update(ctx context.Context, jt justification.JustificationType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justification_types
		SET time_type = $2, justification = $3, abonable = $4, discountable = $5, absence = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, jt.ID, jt.TimeType, jt.Justification, jt.Abonable, jt.Discountable, jt.Absence)
	if err != nil {
		return fmt.Errorf("failed to update justification type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrTypeNotFound
	}

	return nil
}

// Delete implements justification.TypeRepository.
func (r *justificationTypeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM justification_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete justification type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrTypeNotFound
	}

	return nil
}
