package store

import (
	"strings"
	"testing"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	s := NewCredentialStore()
	require.NoError(t, s.Register("alice", "s3cret", model.RoleAdmin))

	assert.True(t, s.Authenticate("alice", "s3cret"))
	assert.False(t, s.Authenticate("alice", "wrong"))
	assert.False(t, s.Authenticate("bob", "s3cret"))
}

func TestRegisterStoresOnlyHash(t *testing.T) {
	s := NewCredentialStore()
	require.NoError(t, s.Register("alice", "s3cret", model.RoleCashier))

	u, ok := s.Find("alice")

	require.True(t, ok)
	assert.NotContains(t, u.PasswordHash, "s3cret")
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"), "expected bcrypt hash, got %q", u.PasswordHash)
	assert.Equal(t, model.RoleCashier, u.Role)
}

func TestRegisterOverwritesExisting(t *testing.T) {
	s := NewCredentialStore()
	require.NoError(t, s.Register("alice", "old", model.RoleCashier))
	require.NoError(t, s.Register("alice", "new", model.RoleAdmin))

	assert.False(t, s.Authenticate("alice", "old"))
	assert.True(t, s.Authenticate("alice", "new"))
	u, _ := s.Find("alice")
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestRegisterValidation(t *testing.T) {
	s := NewCredentialStore()

	assert.Error(t, s.Register("", "pw", model.RoleAdmin))
	assert.Error(t, s.Register("alice", "", model.RoleAdmin))
	assert.Error(t, s.Register("alice", "pw", model.Role("manager")))
}
