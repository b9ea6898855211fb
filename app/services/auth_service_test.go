package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printfarmlabs/stockpile/pkg/auth"
)

func TestSharedSecretPlainPassword(t *testing.T) {
	t.Setenv("AUTH_PASSWORD", "spool-room")
	t.Setenv("AUTH_PASSWORD_HASH", "")

	a := NewSharedSecretAuthenticator()

	session, err := a.Authenticate(Credentials{Password: "spool-room"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	claims, err := auth.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)

	_, err = a.Authenticate(Credentials{Password: "wrong"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestSharedSecretBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := auth.HashPassword("hashed-secret")
	require.NoError(t, err)

	t.Setenv("AUTH_PASSWORD", "plain-secret")
	t.Setenv("AUTH_PASSWORD_HASH", hash)

	a := NewSharedSecretAuthenticator()

	_, err = a.Authenticate(Credentials{Password: "hashed-secret"})
	assert.NoError(t, err)

	// The plain password is ignored once a hash is configured.
	_, err = a.Authenticate(Credentials{Password: "plain-secret"})
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestSharedSecretRejectsEmptyPassword(t *testing.T) {
	t.Setenv("AUTH_PASSWORD", "spool-room")

	a := NewSharedSecretAuthenticator()

	_, err := a.Authenticate(Credentials{Password: ""})
	assert.ErrorIs(t, err, ErrBadCredentials)
}
