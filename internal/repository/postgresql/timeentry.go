package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
)

type timeEntryRepository struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

const timeEntryColumns = `
	te.id, te.user_id, te.date,
	te.clock_in, te.lunch_start, te.lunch_end, te.clock_out,
	te.clock_in_justification, te.lunch_start_justification,
	te.lunch_end_justification, te.clock_out_justification,
	te.status, te.created_at, te.updated_at
`

func scanTimeEntry(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.ClockIn, &e.LunchStart, &e.LunchEnd, &e.ClockOut,
		&e.ClockInJustification, &e.LunchStartJustification,
		&e.LunchEndJustification, &e.ClockOutJustification,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func scanTimeEntryWithUser(row pgx.Row) (timeentry.TimeEntry, error) {
	var e timeentry.TimeEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date,
		&e.ClockIn, &e.LunchStart, &e.LunchEnd, &e.ClockOut,
		&e.ClockInJustification, &e.LunchStartJustification,
		&e.LunchEndJustification, &e.ClockOutJustification,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
		&e.UserName, &e.UserRole,
	)
	return e, err
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			user_id, date, clock_in, lunch_start, lunch_end, clock_out,
			clock_in_justification, lunch_start_justification,
			lunch_end_justification, clock_out_justification, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.Date,
		entry.ClockIn,
		entry.LunchStart,
		entry.LunchEnd,
		entry.ClockOut,
		entry.ClockInJustification,
		entry.LunchStartJustification,
		entry.LunchEndJustification,
		entry.ClockOutJustification,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		// Unique violation on (user_id, date).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrEntryExists
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `, u.name, u.role
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.id = $1
	`

	entry, err := scanTimeEntryWithUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by id: %w", err)
	}

	return entry, nil
}

// GetByUserAndDate implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		WHERE te.user_id = $1
		  AND te.date = $2
		LIMIT 1
	`

	entry, err := scanTimeEntry(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no entry for this day
		}
		return nil, fmt.Errorf("failed to get time entry by user and date: %w", err)
	}

	return &entry, nil
}

// Update implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Update(ctx context.Context, entry timeentry.TimeEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET clock_in = $2, lunch_start = $3, lunch_end = $4, clock_out = $5,
		    clock_in_justification = $6, lunch_start_justification = $7,
		    lunch_end_justification = $8, clock_out_justification = $9,
		    status = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.ClockIn,
		entry.LunchStart,
		entry.LunchEnd,
		entry.ClockOut,
		entry.ClockInJustification,
		entry.LunchStartJustification,
		entry.LunchEndJustification,
		entry.ClockOutJustification,
		entry.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}

// ListByUser implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries te
		WHERE te.user_id = $1
		  AND te.date >= $2
		  AND te.date < $3
		ORDER BY te.date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries by user: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("te.user_id = $%d", argPos))
		args = append(args, *filter.UserID)
		argPos++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("te.date >= $%d", argPos))
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("te.date < $%d", argPos))
		args = append(args, *filter.DateTo)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("te.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM time_entries te WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	query := `
		SELECT ` + timeEntryColumns + `, u.name, u.role
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE ` + where + `
		ORDER BY te.date DESC, u.name
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntryWithUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}

// ListByTeam implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByTeam(ctx context.Context, teamID string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeEntryColumns + `, u.name, u.role
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		JOIN team_members tm ON tm.user_id = te.user_id
		WHERE tm.team_id = $1
		  AND te.date >= $2
		  AND te.date < $3
		ORDER BY te.date, u.name
	`

	rows, err := q.Query(ctx, query, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries by team: %w", err)
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
