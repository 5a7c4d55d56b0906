package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, CheckPassword(hash, "secret123"))
	require.False(t, CheckPassword(hash, "secret124"))
	require.False(t, CheckPassword(hash, ""))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Salted, so two hashes of the same password differ
	require.NotEqual(t, first, second)
}
