package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realrohitsingh/Resume-Screening-Tool/internal/types"
)

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	us, err := NewUserStore(fs, "users.json")
	require.NoError(t, err)
	return us
}

func TestUserStoreCreateAndGet(t *testing.T) {
	us := newTestUserStore(t)

	require.NoError(t, us.Create(types.User{ID: "u1", Email: "alice@example.com", Name: "Alice", Role: "individual"}))

	user, err := us.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 1, us.Count())
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	us := newTestUserStore(t)

	require.NoError(t, us.Create(types.User{Email: "a@b.com"}))
	assert.ErrorIs(t, us.Create(types.User{Email: "A@B.com"}), ErrEmailTaken, "邮箱比较应大小写不敏感")
}

func TestUserStoreNotFound(t *testing.T) {
	us := newTestUserStore(t)

	_, err := us.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
