package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAssignsSequentialIds(t *testing.T) {
	store := NewUserStore()

	first, err := store.Register("alice", "alice@example.com", "hash-1")
	require.NoError(t, err)
	second, err := store.Register("bob", "bob@example.com", "hash-2")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "alice", first.Username)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := NewUserStore()

	_, err := store.Register("alice", "alice@example.com", "hash-1")
	require.NoError(t, err)

	_, err = store.Register("someoneelse", "alice@example.com", "hash-2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	store := NewUserStore()

	_, err := store.Register("alice", "alice@example.com", "hash-1")
	require.NoError(t, err)

	_, err = store.Register("alice", "other@example.com", "hash-2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestFindByEmail(t *testing.T) {
	store := NewUserStore()

	registered, err := store.Register("alice", "alice@example.com", "hash-1")
	require.NoError(t, err)

	found, ok := store.FindByEmail("alice@example.com")
	require.True(t, ok)
	assert.Equal(t, registered.ID, found.ID)
	assert.Equal(t, "hash-1", found.Password)

	_, ok = store.FindByEmail("nobody@example.com")
	assert.False(t, ok)
}

func TestFindByID(t *testing.T) {
	store := NewUserStore()

	registered, err := store.Register("alice", "alice@example.com", "hash-1")
	require.NoError(t, err)

	found, ok := store.FindByID(registered.ID)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", found.Email)

	_, ok = store.FindByID(42)
	assert.False(t, ok)
}
