package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campushub/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"event not found", apperrors.ErrEventNotFound, http.StatusNotFound},
		{"registration not found", apperrors.ErrRegistrationNotFound, http.StatusNotFound},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("not yours"), http.StatusForbidden},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"already registered", apperrors.ErrAlreadyRegistered, http.StatusConflict},
		{"event full", apperrors.ErrEventFull, http.StatusConflict},
		{"event ended", apperrors.ErrEventEnded, http.StatusConflict},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate roll number", apperrors.ErrRollNumberExists, http.StatusConflict},
		{"validation failed", apperrors.NewValidationError("title cannot be empty"), http.StatusBadRequest},
		{"invalid password", apperrors.ErrInvalidPassword, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(tc.err)
			require.Equal(t, tc.status, w.Code)
			require.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestHandleAPIErrorSurfacesValidationMessage(t *testing.T) {
	w := respondWith(apperrors.NewValidationError("participant limit cannot be negative"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "participant limit cannot be negative")
}
