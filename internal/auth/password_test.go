package auth_test

import (
	"testing"

	"github.com/HimeshRasaily/FlowArt/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	// A second hash of the same password uses a fresh salt.
	hash2, err := auth.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEqual(t, hash, hash2)

	// Both hashes verify against the original password.
	assert.True(t, auth.CheckPassword("password123", hash))
	assert.True(t, auth.CheckPassword("password123", hash2))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := auth.HashPassword("")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)

	assert.False(t, auth.CheckPassword("battery-staple", hash))
	assert.False(t, auth.CheckPassword("", hash))
	assert.False(t, auth.CheckPassword("correct-horse", "not-a-bcrypt-hash"))
}
