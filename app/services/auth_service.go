package services

import (
	"crypto/subtle"
	"time"

	"github.com/printfarmlabs/stockpile/config"
	"github.com/printfarmlabs/stockpile/pkg/auth"
)

// Credentials is what a caller presents at login. The gate is a single shared
// password, so there is no username.
type Credentials struct {
	Password string `json:"password" validate:"required"`
}

// Session is an issued bearer token and its expiry.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticator checks credentials and issues sessions. The HTTP layer only
// sees this interface, so the shared-password gate can be swapped for a real
// identity backend without touching controllers.
type Authenticator interface {
	Authenticate(c Credentials) (Session, error)
}

// SharedSecretAuthenticator compares the presented password against the
// configured shared secret. When AUTH_PASSWORD_HASH is set it is treated as a
// bcrypt hash; otherwise AUTH_PASSWORD is compared in constant time.
type SharedSecretAuthenticator struct{}

func NewSharedSecretAuthenticator() *SharedSecretAuthenticator {
	return &SharedSecretAuthenticator{}
}

func (a *SharedSecretAuthenticator) Authenticate(c Credentials) (Session, error) {
	if hash := config.AuthPasswordHash(); hash != "" {
		if !auth.CheckPassword(hash, c.Password) {
			return Session{}, ErrBadCredentials
		}
	} else {
		want := config.AuthPassword()
		if want == "" || subtle.ConstantTimeCompare([]byte(c.Password), []byte(want)) != 1 {
			return Session{}, ErrBadCredentials
		}
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(config.SessionTTLHours()) * time.Hour),
	}, nil
}
