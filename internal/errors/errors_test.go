package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "goarmazem/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"sem capacidade", apperror.NewNoCapacityError("cheio"), http.StatusConflict, "NO_CAPACITY"},
		{"restrição inválida", apperror.NewInvalidConstraintError("zonas"), http.StatusUnprocessableEntity, "INVALID_CONSTRAINT"},
		{"violação", apperror.NewConstraintViolationError("nível"), http.StatusInternalServerError, "CONSTRAINT_VIOLATION"},
		{"não encontrado", apperror.NewNotFoundError("local"), http.StatusNotFound, "NOT_FOUND"},
		{"entrada inválida", apperror.NewInvalidInputError("data"), http.StatusBadRequest, "INVALID_INPUT"},
		{"não autorizado", apperror.NewUnauthorizedError("token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"proibido", apperror.NewForbiddenError("papel"), http.StatusForbidden, "FORBIDDEN"},
		{"rate limit", apperror.NewRateLimitError("calma"), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"interno", apperror.NewInternalError("falha", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, message := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, tc.err.Error(), message)
		})
	}
}

func TestMapToHTTPStatus_WrappedAndUntyped(t *testing.T) {
	wrapped := fmt.Errorf("camada superior: %w", apperror.NewNotFoundError("local vazio"))
	status, category, _ := apperror.MapToHTTPStatus(wrapped)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", category)

	status, category, message := apperror.MapToHTTPStatus(errors.New("qualquer"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.Equal(t, "Ocorreu um erro inesperado.", message)
}

func TestDBErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperror.NewDBError("Falha ao gravar movimento", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "(DB): connection refused")
	assert.Equal(t, "INTERNAL_ERROR", apperror.CategoryOf(err))
	assert.Equal(t, "", apperror.CategoryOf(cause))
}
