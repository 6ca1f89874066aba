package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Password(t *testing.T) {
	h := NewHasher()

	hash, err := h.HashPassword("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	assert.NoError(t, h.ComparePasswordHash("Password123!", hash))
	assert.ErrorIs(t, h.ComparePasswordHash("wrong", hash), ErrPasswordMismatch)
}

func TestHasher_HashString(t *testing.T) {
	h := NewHasher()

	digest := h.HashString("123456")
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, h.HashString("123456"))
	assert.NotEqual(t, digest, h.HashString("654321"))
	assert.Equal(t, "", h.HashString(""))
}
