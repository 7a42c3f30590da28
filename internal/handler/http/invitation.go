package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontodigital/ponto-backend-go/internal/domain/invitation"
	"github.com/pontodigital/ponto-backend-go/internal/handler/http/response"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{invitationService: invitationService}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	inviterID := getUserIDFromContext(r)
	if inviterID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var createReq invitation.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create invitation validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.invitationService.Create(r.Context(), inviterID, createReq)
	if err != nil {
		slog.Error("Create invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation sent successfully", created)
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.invitationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invitations)
}

// Accept implements InvitationHandler.
func (h *InvitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	_, claims, _ := jwtauth.FromContext(r.Context())
	userEmail, _ := claims["email"].(string)

	token := chi.URLParam(r, "token")
	if token == "" {
		response.BadRequest(w, "Invitation token is required", nil)
		return
	}

	if err := h.invitationService.Accept(r.Context(), token, userID, userEmail); err != nil {
		slog.Error("Accept invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation accepted successfully", nil)
}

// Delete implements InvitationHandler.
func (h *InvitationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.invitationService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation revoked successfully", nil)
}

// Stats implements InvitationHandler.
func (h *InvitationHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.invitationService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
