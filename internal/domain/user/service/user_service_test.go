package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog_api/internal/domain/user/model"
	"blog_api/internal/mocks"
	"blog_api/internal/pkg/config"
	"blog_api/pkg/apperr"
	"blog_api/pkg/utils"
)

func newUserFixture(t *testing.T) (*mocks.UserStore, UserService) {
	t.Helper()
	config.GlobalConfig.JWT.Secret = "unit-test-secret-0123456789abcdefghij"
	config.GlobalConfig.JWT.Expire = 1
	store := mocks.NewUserStore()
	return store, NewUserService(store)
}

func TestRegister(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		_, svc := newUserFixture(t)

		user, err := svc.Register("alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "s3cret-pass", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, svc := newUserFixture(t)
		_, err := svc.Register("alice", "alice@example.com", "pw1")
		require.NoError(t, err)

		_, err = svc.Register("alice", "other@example.com", "pw2")
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, svc := newUserFixture(t)
		_, err := svc.Register("alice", "alice@example.com", "pw1")
		require.NoError(t, err)

		_, err = svc.Register("bob", "alice@example.com", "pw2")
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	t.Run("by username and by email", func(t *testing.T) {
		_, svc := newUserFixture(t)
		user, err := svc.Register("alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		for _, login := range []string{"alice", "alice@example.com"} {
			token, err := svc.Login(login, "s3cret-pass")
			require.NoError(t, err)

			claims, err := utils.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, "alice", claims.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, svc := newUserFixture(t)
		_, err := svc.Register("alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		_, err = svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("unknown account reads the same as wrong password", func(t *testing.T) {
		_, svc := newUserFixture(t)
		_, errUnknown := svc.Login("nobody", "whatever")
		assert.ErrorIs(t, errUnknown, apperr.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		store, svc := newUserFixture(t)
		user, err := svc.Register("alice", "alice@example.com", "s3cret-pass")
		require.NoError(t, err)

		user.IsDeleted = true
		require.NoError(t, store.Update(user))

		_, err = svc.Login("alice", "s3cret-pass")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		_, svc := newUserFixture(t)
		user, err := svc.Register("alice", "alice@example.com", "pw")
		require.NoError(t, err)

		got, err := svc.GetProfile(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("missing", func(t *testing.T) {
		_, svc := newUserFixture(t)
		_, err := svc.GetProfile("no-such-user")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("deleted", func(t *testing.T) {
		store, svc := newUserFixture(t)
		user, err := svc.Register("alice", "alice@example.com", "pw")
		require.NoError(t, err)
		user.IsDeleted = true
		require.NoError(t, store.Update(user))

		_, err = svc.GetProfile(user.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestPublicProjection(t *testing.T) {
	u := &model.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	pub := u.Public()
	assert.Equal(t, "alice", pub.Username)
	// the projection type carries no password or email field at all
	assert.Equal(t, u.ID, pub.ID)
}
