package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	sentinel := errors.New("sentinel")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"domain error passes through", NewForbidden("nope"), http.StatusForbidden, "nope"},
		{"wrapped domain error", fmt.Errorf("ctx: %w", NewBadRequest("bad")), http.StatusBadRequest, "bad"},
		{"fiber error", fiber.NewError(http.StatusTeapot, "teapot"), http.StatusTeapot, "teapot"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "Resource not found"},
		{"unknown", sentinel, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap("X", "message", http.StatusForbidden, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "message: cause", err.Error())
	assert.Equal(t, http.StatusForbidden, ToDomainError(err).HTTPStatus)
}
