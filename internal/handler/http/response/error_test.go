package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pontodigital/ponto-backend-go/internal/domain/auth"
	"github.com/pontodigital/ponto-backend-go/internal/domain/justification"
	"github.com/pontodigital/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontodigital/ponto-backend-go/internal/domain/user"
	"github.com/pontodigital/ponto-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestHandleError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"token subject deleted", auth.ErrUserNotFound, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"double punch", timeentry.ErrEventAlreadyPunched, http.StatusConflict},
		{"entry exists", timeentry.ErrEntryExists, http.StatusConflict},
		{"already processed", justification.ErrAlreadyProcessed, http.StatusConflict},
		{"self approval", justification.ErrSelfApproval, http.StatusForbidden},
		{"unmapped error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := validator.ValidationErrors{
		{Field: "date", Message: "date is required"},
	}

	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "date is required")
}
