package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
)

// BalanceRecalculator recomputes each user's accumulated hour bank from
// their settled time entries. Runs as a scheduled job.
type BalanceRecalculator struct {
	entryRepo timeentry.TimeEntryRepository
	userRepo  user.UserRepository
}

func NewBalanceRecalculator(entryRepo timeentry.TimeEntryRepository, userRepo user.UserRepository) *BalanceRecalculator {
	return &BalanceRecalculator{
		entryRepo: entryRepo,
		userRepo:  userRepo,
	}
}

// Run recalculates balance_minutes for every active user. Only days before
// today count; the open day keeps ticking and would distort the bank.
func (b *BalanceRecalculator) Run(ctx context.Context) error {
	users, err := b.userRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users for balance recalculation: %w", err)
	}

	now := time.Now().UTC()
	today := timeutil.StartOfDayUTC(now)

	for i := range users {
		u := &users[i]
		if !u.IsActive() {
			continue
		}

		entries, err := b.entryRepo.ListByUser(ctx, u.ID, time.Time{}, today)
		if err != nil {
			slog.Error("Balance recalculation failed for user", "user_id", u.ID, "error", err)
			continue
		}

		total := 0
		for j := range entries {
			total += DailyBalance(&entries[j], now)
		}

		if total == u.BalanceMinutes {
			continue
		}

		if err := b.userRepo.SetBalanceMinutes(ctx, u.ID, total); err != nil {
			slog.Error("Failed to store recalculated balance", "user_id", u.ID, "error", err)
			continue
		}
		slog.Info("User balance recalculated", "user_id", u.ID, "balance_minutes", total)
	}

	return nil
}
