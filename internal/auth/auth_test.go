package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestBootstrapAnonymousPersists(t *testing.T) {
	dir := t.TempDir()
	s := Bootstrap(dir, "", zap.NewNop())
	assert.Equal(t, "anonymous", s.Source)
	assert.NotEmpty(t, s.UserID)
	assert.True(t, s.Persisted())

	// Second run resolves the saved identity, same user id.
	s2 := Bootstrap(dir, "", zap.NewNop())
	assert.Equal(t, "file", s2.Source)
	assert.Equal(t, s.UserID, s2.UserID)
}

func TestBootstrapTokenSubject(t *testing.T) {
	dir := t.TempDir()
	s := Bootstrap(dir, signedToken(t, "user-42"), zap.NewNop())
	assert.Equal(t, "token", s.Source)
	assert.Equal(t, "user-42", s.UserID)
}

func TestBootstrapBearerPrefixStripped(t *testing.T) {
	dir := t.TempDir()
	s := Bootstrap(dir, "Bearer "+signedToken(t, "user-7"), zap.NewNop())
	assert.Equal(t, "user-7", s.UserID)
}

func TestBootstrapOpaqueTokenIsStable(t *testing.T) {
	a := userIDFromToken("not-a-jwt")
	b := userIDFromToken("not-a-jwt")
	c := userIDFromToken("another-token")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestBootstrapSavedIdentityWinsOverToken(t *testing.T) {
	dir := t.TempDir()
	first := Bootstrap(dir, "", zap.NewNop())
	second := Bootstrap(dir, signedToken(t, "someone-else"), zap.NewNop())
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, "file", second.Source)
}

func TestBootstrapLocalFallback(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not block root")
	}
	dir := t.TempDir()
	// An unwritable base dir breaks both read-back and persistence.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(blocked, 0o500))
	base := filepath.Join(blocked, "data")

	s := Bootstrap(base, "", zap.NewNop())
	assert.Equal(t, "local", s.Source)
	assert.NotEmpty(t, s.UserID, "identity must resolve even on total failure")
	assert.False(t, s.Persisted())
}

func TestBootstrapCorruptIdentityFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "identity.json"), []byte("{"), 0o600))
	s := Bootstrap(dir, "", zap.NewNop())
	assert.Equal(t, "anonymous", s.Source)
	assert.NotEmpty(t, s.UserID)
}
