package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/report"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// ListUsersInScope implements report.Repository.
func (r *reportRepository) ListUsersInScope(ctx context.Context, teamID *string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.status = 'ACTIVE'
	`
	args := []interface{}{}
	if teamID != nil {
		query += ` AND EXISTS (SELECT 1 FROM team_members tm WHERE tm.user_id = u.id AND tm.team_id = $1)`
		args = append(args, *teamID)
	}
	query += ` ORDER BY u.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users in scope: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListEntriesInScope implements report.Repository.
func (r *reportRepository) ListEntriesInScope(ctx context.Context, teamID *string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `, u.name, u.role
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.date >= $1
		  AND te.date < $2
	`
	args := []interface{}{from, to}
	if teamID != nil {
		query += ` AND EXISTS (SELECT 1 FROM team_members tm WHERE tm.user_id = te.user_id AND tm.team_id = $3)`
		args = append(args, *teamID)
	}
	query += ` ORDER BY te.date, u.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries in scope: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntryWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
