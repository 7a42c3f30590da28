package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/team"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/response"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type TeamHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &TeamHandlerImpl{teamService: teamService}
}

// Create implements TeamHandler.
func (h *TeamHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq team.CreateTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create team validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.teamService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", created)
}

// Get implements TeamHandler.
func (h *TeamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	t, err := h.teamService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// List implements TeamHandler.
func (h *TeamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// Update implements TeamHandler.
func (h *TeamHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq team.UpdateTeamRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update team validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.teamService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update team service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated successfully", updated)
}

// Delete implements TeamHandler.
func (h *TeamHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.teamService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// ListMembers implements TeamHandler.
func (h *TeamHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// AddMember implements TeamHandler.
func (h *TeamHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	var addReq team.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&addReq); err != nil {
		slog.Error("Add team member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := addReq.Validate(); err != nil {
		slog.Error("Add team member validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.teamService.AddMember(r.Context(), id, addReq); err != nil {
		slog.Error("Add team member service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added successfully", nil)
}

// RemoveMember implements TeamHandler.
func (h *TeamHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userID")
	if !validator.IsValidUUID(id) || !validator.IsValidUUID(userID) {
		response.BadRequest(w, "id and userID must be valid UUIDs", nil)
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), id, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed successfully", nil)
}
