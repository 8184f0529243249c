package auth_test

import (
	"testing"
	"time"

	"github.com/HimeshRasaily/FlowArt/internal/auth"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_jwt_secret"

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenService_Expired(t *testing.T) {
	// Negative TTL makes the token expired the moment it is issued.
	svc := auth.NewTokenService(testSecret, -time.Hour)

	token, err := svc.Issue("user-123")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenService_ExpiresAfterTTL(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Minute)

	token, err := svc.Issue("user-123")
	assert.NoError(t, err)

	// Shift the library clock past the expiry instant.
	jwt.TimeFunc = func() time.Time { return time.Now().Add(2 * time.Minute) }
	defer func() { jwt.TimeFunc = time.Now }()

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenService_BadSignature(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)
	other := auth.NewTokenService("a_different_secret", time.Hour)

	token, err := other.Issue("user-123")
	assert.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, auth.ErrTokenBadSignature)
}

func TestTokenService_Tampered(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue("user-123")
	assert.NoError(t, err)

	// Flip the last byte of the signature segment.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, auth.ErrTokenBadSignature)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := auth.NewTokenService(testSecret, time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Validate(tokenString)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed, "token %q", tokenString)
	}
}
