package service

import (
	"context"
	"strings"
	"testing"

	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/internal/blog/store/drivers/sqlite"
	"github.com/openjournal/blogd/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("stores a hash, never the password", func(t *testing.T) {
		u, err := svc.Register(ctx, "alice", "correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice", u.Username)
		require.False(t, u.CreatedAt.IsZero())
		require.False(t, u.UpdatedAt.IsZero())

		stored, err := svc.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotContains(t, stored.PasswordHash, "correct horse")
		require.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
		require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", stored.PasswordHash))
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "another password")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("trims surrounding whitespace from the username", func(t *testing.T) {
		u, err := svc.Register(ctx, "  bob  ", "hunter22")
		require.NoError(t, err)
		require.Equal(t, "bob", u.Username)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "pw")
		require.ErrorIs(t, err, ErrMissingCredentials)

		_, err = svc.Register(ctx, "carol", "")
		require.ErrorIs(t, err, ErrMissingCredentials)

		_, err = svc.Register(ctx, "   ", "pw")
		require.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "alice", "correct horse battery staple")
	require.NoError(t, err)

	t.Run("accepts the right password", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "alice", "correct horse battery staple")
		require.NoError(t, err)
		require.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		_, wrongPass := svc.Authenticate(ctx, "alice", "not the password")
		_, unknownUser := svc.Authenticate(ctx, "mallory", "not the password")

		require.ErrorIs(t, wrongPass, ErrInvalidCredentials)
		require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	})
}

func TestUserServiceSetPassword(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	u, err := svc.Register(ctx, "alice", "old password")
	require.NoError(t, err)

	require.NoError(t, svc.SetPassword(ctx, u.ID, "new password"))

	_, err = svc.Authenticate(ctx, "alice", "old password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "alice", "new password")
	require.NoError(t, err)

	t.Run("rejects empty passwords", func(t *testing.T) {
		require.ErrorIs(t, svc.SetPassword(ctx, u.ID, ""), ErrMissingCredentials)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		require.ErrorIs(t, svc.SetPassword(ctx, "no-such-user", "pw"), store.ErrNotFound)
	})
}
