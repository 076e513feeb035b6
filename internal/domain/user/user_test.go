package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

func TestNewUser_Success(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "hashed-secret", authorization.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "alice@example.com", u.Email())
	assert.Equal(t, "hashed-secret", u.PasswordHash())
	assert.False(t, u.IsAdmin())
	assert.False(t, u.CreatedAt().IsZero())
}

func TestNewUser_NormalizesInput(t *testing.T) {
	u, err := NewUser("  alice  ", "  Alice@Example.COM  ", "hash", authorization.RoleUser)

	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, "alice@example.com", u.Email())
}

func TestNewUser_AdminRole(t *testing.T) {
	u, err := NewUser("root", "root@example.com", "hash", authorization.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestNewUser_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		hash     string
		role     authorization.UserRole
	}{
		{name: "username too short", username: "ab", email: "a@example.com", hash: "h", role: authorization.RoleUser},
		{name: "username too long", username: strings.Repeat("a", 51), email: "a@example.com", hash: "h", role: authorization.RoleUser},
		{name: "empty email", username: "alice", hash: "h", role: authorization.RoleUser},
		{name: "invalid email", username: "alice", email: "not-an-email", hash: "h", role: authorization.RoleUser},
		{name: "email with display name", username: "alice", email: "Alice <alice@example.com>", hash: "h", role: authorization.RoleUser},
		{name: "missing hash", username: "alice", email: "a@example.com", role: authorization.RoleUser},
		{name: "invalid role", username: "alice", email: "a@example.com", hash: "h", role: "superuser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.hash, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com", "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.SetID(1))
	assert.Equal(t, uint(1), u.ID())

	assert.Error(t, u.SetID(2))

	fresh, err := NewUser("bob", "bob@example.com", "hash", authorization.RoleUser)
	require.NoError(t, err)
	assert.Error(t, fresh.SetID(0))
}
