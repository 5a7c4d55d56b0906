package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "campushub-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "STUDENT")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.PrincipalID)
	require.Equal(t, "STUDENT", claims.Role)
	require.Equal(t, "campushub-test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:   "different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub-test",
	})

	token, _, err := svc.GenerateToken(42, "ADMIN")
	require.NoError(t, err)

	_, err = other.ValidateAndExtractClaims(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(42, "STUDENT")
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateAndExtractClaims(token)
		require.Error(t, err, "token %q", token)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	// A token without the Bearer scheme is rejected
	_, err = ExtractBearerToken("abc.def.ghi")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Basic dXNlcjpwYXNz")
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
