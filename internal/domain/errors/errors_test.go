package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_AggregatesFields(t *testing.T) {
	err := NewValidationError("Unidade", "Urgência", "Nome de quem quer indicar")

	assert.Equal(t, "Preencha os campos obrigatórios: Unidade, Urgência, Nome de quem quer indicar", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Len(t, err.Fields(), 3)
}

func TestValidationError_AsAppError(t *testing.T) {
	wrapped := errors.Wrap(NewValidationError("Tipo"), "submit failed")

	var appErr AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      AppError
		httpCode int
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"account not verified", ErrAccountNotVerified, http.StatusUnauthorized},
		{"role not allowed", ErrRoleNotAllowed, http.StatusForbidden},
		{"request not found", ErrRequestNotFound, http.StatusNotFound},
		{"invalid transition", ErrInvalidTransition, http.StatusConflict},
		{"invoice not found", ErrInvoiceNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.httpCode, tt.err.HTTPCode())
			assert.NotEmpty(t, tt.err.Message())
			assert.NotEmpty(t, tt.err.ErrorCode())
		})
	}
}

func TestAccountNotVerified_RedirectHint(t *testing.T) {
	assert.Equal(t, "/auth/verificacao", ErrAccountNotVerified.Details())
}
