package report

import "context"

// ReportService defines business logic for monthly reports.
type ReportService interface {
	// TeamMonthly builds the monthly report for one team.
	TeamMonthly(ctx context.Context, teamID string, year int, month int) (MonthlyReportResponse, error)

	// OrganizationMonthly builds the monthly report across all users.
	OrganizationMonthly(ctx context.Context, year int, month int) (MonthlyReportResponse, error)
}
