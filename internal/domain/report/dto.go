package report

// UserMonthlyReport aggregates one user's month of time entries.
type UserMonthlyReport struct {
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	UserRole        string  `json:"user_role"`
	WorkedMinutes   int     `json:"worked_minutes"`
	WorkedHours     string  `json:"worked_hours"` // "<H>h<MM>m"
	DaysWorked      int     `json:"days_worked"`
	Absences        int     `json:"absences"` // business days with no punches
	BankMinutes     int     `json:"bank_minutes"`
	BankHours       string  `json:"bank_hours"` // signed "<H>h<MM>m"
	AvgHoursPerDay  float64 `json:"avg_hours_per_day"`
	PendingEntries  int     `json:"pending_entries"`
	JustifiedDays   int     `json:"justified_days"`
}

// MonthlyReportResponse is a monthly report for a team or the organization.
type MonthlyReportResponse struct {
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	TeamID    *string             `json:"team_id,omitempty"`
	TeamName  *string             `json:"team_name,omitempty"`
	Users     []UserMonthlyReport `json:"users"`
	TotalBank string              `json:"total_bank"` // signed "<H>h<MM>m"
}
