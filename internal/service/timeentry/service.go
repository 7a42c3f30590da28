package timeentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/database"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/timeutil"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type TimeEntryServiceImpl struct {
	db *database.DB
	timeentry.TimeEntryRepository
	justification.JustificationRepository
	user.UserRepository
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func claimsUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// mapEntryToResponse builds the full response for one entry: formatted
// punches, worked hours with open segments ticking against now, the calendar
// marker and the day's hour-bank contribution.
func mapEntryToResponse(entry *timeentry.TimeEntry, now time.Time) timeentry.TimeEntryResponse {
	worked := ComputeWorkedHours(entry, now)
	balance := DailyBalance(entry, now)

	status := entry.Status
	if status == "" {
		status = timeentry.StatusCorrect
	}

	resp := timeentry.TimeEntryResponse{
		ID:                      entry.ID,
		UserID:                  entry.UserID,
		UserName:                entry.UserName,
		Date:                    timeutil.FormatDate(entry.Date),
		DateLabel:               timeutil.FormatDateInFull(entry.Date),
		ClockIn:                 timePtrToString(entry.ClockIn),
		LunchStart:              timePtrToString(entry.LunchStart),
		LunchEnd:                timePtrToString(entry.LunchEnd),
		ClockOut:                timePtrToString(entry.ClockOut),
		ClockInJustification:    entry.ClockInJustification,
		LunchStartJustification: entry.LunchStartJustification,
		LunchEndJustification:   entry.LunchEndJustification,
		ClockOutJustification:   entry.ClockOutJustification,
		Status:                  status,
		Marker:                  string(entry.Marker()),
		WorkedHours: timeentry.WorkedHoursResponse{
			MorningMinutes:   worked.Morning,
			AfternoonMinutes: worked.Afternoon,
			LunchMinutes:     worked.LunchBreak,
			TotalMinutes:     worked.Total,
			Total:            worked.Formatted(),
		},
		BalanceMinutes: balance,
		Balance:        timeutil.FormatSignedMinutes(balance),
	}

	if !entry.CreatedAt.IsZero() {
		resp.CreatedAt = entry.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !entry.UpdatedAt.IsZero() {
		resp.UpdatedAt = entry.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

// emptyDayResponse synthesizes the response for a day without an entry so
// clients can render an empty day without a 404 round trip.
func emptyDayResponse(userID string, date time.Time) timeentry.TimeEntryResponse {
	entry := &timeentry.TimeEntry{
		UserID: userID,
		Date:   timeutil.StartOfDayUTC(date),
		Status: timeentry.StatusCorrect,
	}
	return mapEntryToResponse(entry, time.Now().UTC())
}

// refreshStatus re-derives and stores the entry status from its punches and
// any approval requests already filed for it.
func (s *TimeEntryServiceImpl) refreshStatus(ctx context.Context, entry *timeentry.TimeEntry) error {
	var requests []justification.Justification
	if entry.ID != "" {
		var err error
		requests, err = s.JustificationRepository.ListByEntry(ctx, entry.ID)
		if err != nil {
			return fmt.Errorf("failed to list justifications for entry: %w", err)
		}
	}

	status, err := DeriveStatus(entry, requests)
	if err != nil {
		return err
	}
	entry.Status = status
	return nil
}

// Punch implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Punch(ctx context.Context, req timeentry.PunchRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	nowUTC := time.Now().UTC()
	eventType := timeentry.EventType(req.TimeType)

	observed := nowUTC
	if req.Timestamp != nil {
		parsed, _ := validator.IsValidDateTime(*req.Timestamp)
		observed = parsed.UTC()
	}

	date := timeutil.StartOfDayUTC(observed)
	if req.Date != nil {
		parsed, _ := validator.IsValidDate(*req.Date)
		date = timeutil.StartOfDayUTC(parsed)
		if req.Timestamp == nil {
			// Re-anchor the wall-clock time on the requested day, otherwise
			// the stored punch would sit on a different civil day than the entry.
			observed = date.Add(nowUTC.Sub(timeutil.StartOfDayUTC(nowUTC)))
		}
	}

	entry, err := s.TimeEntryRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get entry by user and date: %w", err)
	}

	isNew := entry == nil
	if isNew {
		entry = &timeentry.TimeEntry{
			UserID: userID,
			Date:   date,
		}
	}

	if entry.EventTime(eventType) != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEventAlreadyPunched
	}

	entry.SetEventTime(eventType, &observed)
	if req.Justification != nil && *req.Justification != "" {
		entry.SetJustification(eventType, req.Justification)
	}

	if err := s.refreshStatus(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if isNew {
		created, err := s.TimeEntryRepository.Create(ctx, *entry)
		if err != nil {
			if errors.Is(err, timeentry.ErrEntryExists) {
				return timeentry.TimeEntryResponse{}, timeentry.ErrEntryExists
			}
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
		}
		entry = &created
	} else {
		if err := s.TimeEntryRepository.Update(ctx, *entry); err != nil {
			return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
		}
	}

	return mapEntryToResponse(entry, nowUTC), nil
}

// CreateRetroactive implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) CreateRetroactive(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	userID := req.UserID
	if userID == "" {
		claimed, err := claimsUserID(ctx)
		if err != nil {
			return timeentry.TimeEntryResponse{}, err
		}
		userID = claimed
	}

	parsedDate, _ := validator.IsValidDate(req.Date)
	date := timeutil.StartOfDayUTC(parsedDate)

	existing, err := s.TimeEntryRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get entry by user and date: %w", err)
	}
	if existing != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEntryExists
	}

	entry := &timeentry.TimeEntry{
		UserID:                  userID,
		Date:                    date,
		ClockInJustification:    req.ClockInJustification,
		LunchStartJustification: req.LunchStartJustification,
		LunchEndJustification:   req.LunchEndJustification,
		ClockOutJustification:   req.ClockOutJustification,
	}

	punches := map[timeentry.EventType]*string{
		timeentry.EventClockIn:    req.ClockIn,
		timeentry.EventLunchStart: req.LunchStart,
		timeentry.EventLunchEnd:   req.LunchEnd,
		timeentry.EventClockOut:   req.ClockOut,
	}
	for eventType, raw := range punches {
		if raw == nil {
			continue
		}
		parsed, _ := validator.IsValidDateTime(*raw)
		observed := parsed.UTC()
		entry.SetEventTime(eventType, &observed)
	}

	if err := s.refreshStatus(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	created, err := s.TimeEntryRepository.Create(ctx, *entry)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryExists) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrEntryExists
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return mapEntryToResponse(&created, time.Now().UTC()), nil
}

// GetToday implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetToday(ctx context.Context, userID string) (timeentry.TimeEntryResponse, error) {
	nowUTC := time.Now().UTC()
	today := timeutil.StartOfDayUTC(nowUTC)

	entry, err := s.TimeEntryRepository.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get entry by user and date: %w", err)
	}
	if entry == nil {
		return emptyDayResponse(userID, today), nil
	}

	return mapEntryToResponse(entry, nowUTC), nil
}

// GetByDate implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetByDate(ctx context.Context, userID string, date string) (timeentry.TimeEntryResponse, error) {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return timeentry.TimeEntryResponse{}, timeentry.ErrInvalidDate
	}
	day := timeutil.StartOfDayUTC(parsed)

	entry, err := s.TimeEntryRepository.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get entry by user and date: %w", err)
	}
	if entry == nil {
		return emptyDayResponse(userID, day), nil
	}

	return mapEntryToResponse(entry, time.Now().UTC()), nil
}

// ListByCompetence implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListByCompetence(ctx context.Context, userID string, competence string) (timeentry.ListTimeEntryResponse, error) {
	parsed, ok := validator.IsValidCompetence(competence)
	if !ok {
		return timeentry.ListTimeEntryResponse{}, timeentry.ErrInvalidDate
	}

	from, to := timeutil.MonthInterval(parsed.Year(), parsed.Month())

	entries, err := s.TimeEntryRepository.ListByUser(ctx, userID, from, to)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("failed to list entries by user: %w", err)
	}

	nowUTC := time.Now().UTC()
	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, mapEntryToResponse(&entries[i], nowUTC))
	}

	return timeentry.ListTimeEntryResponse{
		Entries:    responses,
		TotalItems: int64(len(responses)),
	}, nil
}

// ListByTeam implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListByTeam(ctx context.Context, teamID string, competence string) (timeentry.ListTimeEntryResponse, error) {
	parsed, ok := validator.IsValidCompetence(competence)
	if !ok {
		return timeentry.ListTimeEntryResponse{}, timeentry.ErrInvalidDate
	}

	from, to := timeutil.MonthInterval(parsed.Year(), parsed.Month())

	entries, err := s.TimeEntryRepository.ListByTeam(ctx, teamID, from, to)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("failed to list entries by team: %w", err)
	}

	nowUTC := time.Now().UTC()
	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, mapEntryToResponse(&entries[i], nowUTC))
	}

	return timeentry.ListTimeEntryResponse{
		Entries:    responses,
		TotalItems: int64(len(responses)),
	}, nil
}

// List implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) List(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.TimeEntryRepository.List(ctx, filter)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	nowUTC := time.Now().UTC()
	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, mapEntryToResponse(&entries[i], nowUTC))
	}

	return timeentry.ListTimeEntryResponse{
		Entries:    responses,
		TotalItems: total,
	}, nil
}

// Get implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Get(ctx context.Context, id string) (timeentry.TimeEntryResponse, error) {
	entry, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return mapEntryToResponse(&entry, time.Now().UTC()), nil
}

// Update implements timeentry.TimeEntryService.
// Managers use this to fix wrong punch times on a recorded entry.
func (s *TimeEntryServiceImpl) Update(ctx context.Context, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	punches := map[timeentry.EventType]*string{
		timeentry.EventClockIn:    req.ClockIn,
		timeentry.EventLunchStart: req.LunchStart,
		timeentry.EventLunchEnd:   req.LunchEnd,
		timeentry.EventClockOut:   req.ClockOut,
	}
	for eventType, raw := range punches {
		if raw == nil {
			continue
		}
		if *raw == "" {
			// Empty string clears the punch.
			entry.SetEventTime(eventType, nil)
			continue
		}
		parsed, _ := validator.IsValidDateTime(*raw)
		observed := parsed.UTC()
		entry.SetEventTime(eventType, &observed)
	}

	texts := map[timeentry.EventType]*string{
		timeentry.EventClockIn:    req.ClockInJustification,
		timeentry.EventLunchStart: req.LunchStartJustification,
		timeentry.EventLunchEnd:   req.LunchEndJustification,
		timeentry.EventClockOut:   req.ClockOutJustification,
	}
	for eventType, text := range texts {
		if text == nil {
			continue
		}
		if *text == "" {
			entry.SetJustification(eventType, nil)
			continue
		}
		entry.SetJustification(eventType, text)
	}

	if err := s.refreshStatus(ctx, &entry); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := s.TimeEntryRepository.Update(ctx, entry); err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	updated, err := s.TimeEntryRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get updated time entry: %w", err)
	}

	return mapEntryToResponse(&updated, time.Now().UTC()), nil
}

// Delete implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.TimeEntryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, timeentry.ErrEntryNotFound) {
			return timeentry.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	return nil
}

func NewTimeEntryService(
	db *database.DB,
	entryRepo timeentry.TimeEntryRepository,
	justificationRepo justification.JustificationRepository,
	userRepo user.UserRepository,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:                      db,
		TimeEntryRepository:     entryRepo,
		JustificationRepository: justificationRepo,
		UserRepository:          userRepo,
	}
}
