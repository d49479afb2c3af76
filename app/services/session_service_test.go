package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
)

func newSession(t *testing.T) (*services.SessionService, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	return services.NewSessionService(store), store
}

func TestLoginWithoutProfileFails(t *testing.T) {
	session, _ := newSession(t)

	_, err := session.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.False(t, session.IsAuthenticated())
}

func TestRegisterActivatesSession(t *testing.T) {
	session, _ := newSession(t)

	profile, err := session.Register(models.UserProfile{
		Email:     "jane@example.com",
		Password:  "s3cret",
		FirstName: "Jane",
	})
	require.NoError(t, err)

	assert.True(t, session.IsAuthenticated())
	current, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", current.Email)
	assert.NotEqual(t, "s3cret", profile.Password, "passwords are stored hashed, never as typed")
}

func TestStoredPasswordIsHashed(t *testing.T) {
	session, store := newSession(t)

	_, err := session.Register(models.UserProfile{Email: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)

	var stored models.UserProfile
	ok, getErr := store.Get(kvstore.KeyUser, &stored)
	require.NoError(t, getErr)
	require.True(t, ok)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestLoginVerifiesAgainstHash(t *testing.T) {
	session, _ := newSession(t)

	_, err := session.Register(models.UserProfile{Email: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)
	session.Logout()

	_, err = session.Login("jane@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	profile, err := session.Login("jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.True(t, session.IsAuthenticated())
}

// Logging out ends the session but keeps the stored profile, so the
// same credentials keep working afterwards.
func TestLogoutThenLoginSucceeds(t *testing.T) {
	session, _ := newSession(t)

	_, err := session.Register(models.UserProfile{Email: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)

	session.Logout()
	assert.False(t, session.IsAuthenticated())
	_, ok := session.Current()
	assert.False(t, ok)

	_, err = session.Login("jane@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestRegisterOverwritesPreviousProfile(t *testing.T) {
	session, _ := newSession(t)

	_, err := session.Register(models.UserProfile{Email: "old@example.com", Password: "old-pass"})
	require.NoError(t, err)
	_, err = session.Register(models.UserProfile{Email: "new@example.com", Password: "new-pass"})
	require.NoError(t, err)

	_, err = session.Login("old@example.com", "old-pass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials, "a single profile slot holds only the latest registration")

	_, err = session.Login("new@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestSessionRestoredFromStore(t *testing.T) {
	store := kvstore.NewMemory()

	first := services.NewSessionService(store)
	_, err := first.Register(models.UserProfile{Email: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)

	second := services.NewSessionService(store)
	assert.True(t, second.IsAuthenticated())
	current, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", current.Email)
}
