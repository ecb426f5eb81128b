package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager([]byte("secret"), time.Hour)

	token, expiresAt, err := m.Issue(42, "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestManager_VerifyRejects(t *testing.T) {
	m := NewManager([]byte("secret"), time.Hour)
	other := NewManager([]byte("other"), time.Hour)

	token, _, err := other.Issue(1, "user")
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.Error(t, err, "signature from another secret")

	expired := NewManager([]byte("secret"), time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err = expired.Issue(1, "user")
	require.NoError(t, err)
	_, err = m.Verify(token)
	assert.Error(t, err, "expired token")

	refresh, err := GenerateToken([]byte("secret"), 1, "user", "refresh", time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = m.Verify(refresh)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	_, err = m.Verify("not-a-token")
	assert.Error(t, err)
}
