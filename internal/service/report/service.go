package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pontodigital/ponto-backend-go/internal/domain/report"
	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
	timeentrysvc "github.com/pontodigital/ponto-backend-go/internal/service/timeentry"
)

type ReportServiceImpl struct {
	db *database.DB
	report.Repository
	team.TeamRepository
}

// buildMonthly aggregates a month of entries per user. Absences count only
// business days already elapsed, so a report pulled mid-month does not mark
// the future as absent.
func (s *ReportServiceImpl) buildMonthly(ctx context.Context, teamID *string, year int, month int) (report.MonthlyReportResponse, error) {
	if month < 1 || month > 12 {
		return report.MonthlyReportResponse{}, timeentry.ErrInvalidDate
	}

	from, to := timeutil.MonthInterval(year, time.Month(month))
	nowUTC := time.Now().UTC()

	users, err := s.Repository.ListUsersInScope(ctx, teamID)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list users in scope: %w", err)
	}

	entries, err := s.Repository.ListEntriesInScope(ctx, teamID, from, to)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to list entries in scope: %w", err)
	}

	byUser := make(map[string][]timeentry.TimeEntry, len(users))
	for i := range entries {
		byUser[entries[i].UserID] = append(byUser[entries[i].UserID], entries[i])
	}

	elapsedBusinessDays := 0
	for day := from; day.Before(to) && !day.After(nowUTC); day = day.AddDate(0, 0, 1) {
		if timeutil.IsBusinessDay(day) {
			elapsedBusinessDays++
		}
	}

	userReports := make([]report.UserMonthlyReport, 0, len(users))
	totalBank := 0

	for i := range users {
		u := users[i]
		r := report.UserMonthlyReport{
			UserID:   u.ID,
			UserName: u.Name,
			UserRole: string(u.Role),
		}

		workedBusinessDays := 0
		for _, entry := range byUser[u.ID] {
			if entry.Marker() == timeentry.MarkerMissing {
				continue
			}

			worked := timeentrysvc.ComputeWorkedHours(&entry, nowUTC)
			r.WorkedMinutes += worked.Total
			r.BankMinutes += timeentrysvc.DailyBalance(&entry, nowUTC)
			r.DaysWorked++
			if timeutil.IsBusinessDay(entry.Date) {
				workedBusinessDays++
			}

			switch entry.Status {
			case timeentry.StatusPendingApproval:
				r.PendingEntries++
			case timeentry.StatusOffSchedule:
				r.JustifiedDays++
			}
		}

		r.WorkedHours = timeutil.FormatMinutesHours(r.WorkedMinutes)
		r.BankHours = timeutil.FormatSignedMinutes(r.BankMinutes)
		if absences := elapsedBusinessDays - workedBusinessDays; absences > 0 {
			r.Absences = absences
		}
		if r.DaysWorked > 0 {
			r.AvgHoursPerDay = math.Round(float64(r.WorkedMinutes)/float64(r.DaysWorked)/60.0*100) / 100
		}

		totalBank += r.BankMinutes
		userReports = append(userReports, r)
	}

	return report.MonthlyReportResponse{
		Year:      year,
		Month:     month,
		TeamID:    teamID,
		Users:     userReports,
		TotalBank: timeutil.FormatSignedMinutes(totalBank),
	}, nil
}

// TeamMonthly implements report.ReportService.
func (s *ReportServiceImpl) TeamMonthly(ctx context.Context, teamID string, year int, month int) (report.MonthlyReportResponse, error) {
	teamData, err := s.TeamRepository.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return report.MonthlyReportResponse{}, team.ErrTeamNotFound
		}
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to get team: %w", err)
	}

	resp, err := s.buildMonthly(ctx, &teamID, year, month)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	resp.TeamName = &teamData.Name
	return resp, nil
}

// OrganizationMonthly implements report.ReportService.
func (s *ReportServiceImpl) OrganizationMonthly(ctx context.Context, year int, month int) (report.MonthlyReportResponse, error) {
	return s.buildMonthly(ctx, nil, year, month)
}

func NewReportService(db *database.DB, reportRepo report.Repository, teamRepo team.TeamRepository) report.ReportService {
	return &ReportServiceImpl{
		db:             db,
		Repository:     reportRepo,
		TeamRepository: teamRepo,
	}
}
