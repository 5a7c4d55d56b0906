package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campushub/internal/pkg/auth"
)

func newTestRouter(jwtService *auth.JWTService, requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	if requiredRole != "" {
		group.Use(m.RoleRequired(requiredRole))
	}
	group.GET("/protected", func(c *gin.Context) {
		id, _ := GetPrincipalID(c)
		c.JSON(http.StatusOK, gin.H{"principalId": id})
	})
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub-test",
	})
	router := newTestRouter(jwtService, "")

	t.Run("rejects a missing header", func(t *testing.T) {
		w := doRequest(router, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a header without the Bearer scheme", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(42, "STUDENT")
		require.NoError(t, err)

		w := doRequest(router, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		w := doRequest(router, "Bearer not-a-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:   "test-secret",
			TokenExp:    -time.Minute,
			TokenIssuer: "campushub-test",
		})
		token, _, err := expiredService.GenerateToken(1, "STUDENT")
		require.NoError(t, err)

		w := doRequest(router, "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "expired")
	})

	t.Run("accepts a valid token and exposes the principal", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(42, "STUDENT")
		require.NoError(t, err)

		w := doRequest(router, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "42")
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub-test",
	})
	router := newTestRouter(jwtService, "ADMIN")

	t.Run("rejects the wrong role", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(42, "STUDENT")
		require.NoError(t, err)

		w := doRequest(router, "Bearer "+token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("accepts the required role", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken(7, "ADMIN")
		require.NoError(t, err)

		w := doRequest(router, "Bearer "+token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
