package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/response"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type TimeEntryHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	CreateRetroactive(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetByDate(w http.ResponseWriter, r *http.Request)
	ListByCompetence(w http.ResponseWriter, r *http.Request)
	ListByTeam(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}

// Punch implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var punchReq timeentry.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := punchReq.Validate(); err != nil {
		slog.Error("Punch validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entry, err := h.timeEntryService.Punch(r.Context(), punchReq)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", entry)
}

// CreateRetroactive implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) CreateRetroactive(w http.ResponseWriter, r *http.Request) {
	var createReq timeentry.CreateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateRetroactive decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateRetroactive validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entry, err := h.timeEntryService.CreateRetroactive(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateRetroactive service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", entry)
}

// GetToday implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	entry, err := h.timeEntryService.GetToday(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// GetByDate implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	date := chi.URLParam(r, "date")
	entry, err := h.timeEntryService.GetByDate(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// ListByCompetence implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListByCompetence(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	// Managers may inspect another user's month
	if other := r.URL.Query().Get("user_id"); other != "" && isManagerFromContext(r) {
		userID = other
	}

	competence := chi.URLParam(r, "competence")
	result, err := h.timeEntryService.ListByCompetence(r.Context(), userID, competence)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByTeam implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) ListByTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "id")
	if !validator.IsValidUUID(teamID) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	competence := r.URL.Query().Get("competence")
	if competence == "" {
		competence = time.Now().UTC().Format("2006-01")
	}

	result, err := h.timeEntryService.ListByTeam(r.Context(), teamID, competence)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.TimeEntryFilter{
		Page:  getIntQueryParam(r, "page", 1),
		Limit: getIntQueryParam(r, "limit", 20),
	}

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if from := r.URL.Query().Get("date_from"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "date_from must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateFrom = &t
	}
	if to := r.URL.Query().Get("date_to"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "date_to must be in YYYY-MM-DD format", nil)
			return
		}
		filter.DateTo = &t
	}

	result, err := h.timeEntryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((result.TotalItems + int64(filter.Limit) - 1) / int64(filter.Limit))
	}
	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: result.TotalItems,
		TotalPages: totalPages,
	})
}

// Get implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	entry, err := h.timeEntryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Update implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq timeentry.UpdateTimeEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update time entry validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entry, err := h.timeEntryService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update time entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", entry)
}

// Delete implements TimeEntryHandler.
func (h *TimeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.timeEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}
