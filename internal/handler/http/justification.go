package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/response"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type JustificationHandler interface {
	// Catalog
	CreateType(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	// Workflow
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	typeService          justification.TypeService
	justificationService justification.JustificationService
}

func NewJustificationHandler(typeService justification.TypeService, justificationService justification.JustificationService) JustificationHandler {
	return &JustificationHandlerImpl{
		typeService:          typeService,
		justificationService: justificationService,
	}
}

// CreateType implements JustificationHandler.
func (h *JustificationHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var createReq justification.CreateTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("CreateType validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.typeService.CreateType(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification type created successfully", created)
}

// GetType implements JustificationHandler.
func (h *JustificationHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	jt, err := h.typeService.GetType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, jt)
}

// ListTypes implements JustificationHandler.
func (h *JustificationHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	role := user.RoleMember
	if isManagerFromContext(r) {
		role = user.RoleManager
	}

	types, err := h.typeService.ListTypes(r.Context(), role)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// UpdateType implements JustificationHandler.
func (h *JustificationHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var updateReq justification.UpdateTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("UpdateType validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.typeService.UpdateType(r.Context(), updateReq)
	if err != nil {
		slog.Error("UpdateType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification type updated successfully", updated)
}

// DeleteType implements JustificationHandler.
func (h *JustificationHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.typeService.DeleteType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification type deleted successfully", nil)
}

// Create implements JustificationHandler.
func (h *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var createReq justification.CreateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create justification validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.justificationService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification submitted successfully", created)
}

// Get implements JustificationHandler.
func (h *JustificationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	j, err := h.justificationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, j)
}

// ListMine implements JustificationHandler.
func (h *JustificationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var startDate, endDate *time.Time
	if from := r.URL.Query().Get("start_date"); from != "" {
		t, ok := validator.IsValidDate(from)
		if !ok {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		startDate = &t
	}
	if to := r.URL.Query().Get("end_date"); to != "" {
		t, ok := validator.IsValidDate(to)
		if !ok {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		endDate = &t
	}

	list, err := h.justificationService.ListByUser(r.Context(), userID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListPending implements JustificationHandler.
func (h *JustificationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	list, err := h.justificationService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Approve implements JustificationHandler.
func (h *JustificationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	approverID := getUserIDFromContext(r)
	if approverID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	approved, err := h.justificationService.Approve(r.Context(), id, approverID)
	if err != nil {
		slog.Error("Approve justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification approved", approved)
}

// Reject implements JustificationHandler.
func (h *JustificationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	approverID := getUserIDFromContext(r)
	if approverID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	rejected, err := h.justificationService.Reject(r.Context(), id, approverID)
	if err != nil {
		slog.Error("Reject justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification rejected", rejected)
}
