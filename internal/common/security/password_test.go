package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)
	assert.NotEqual(t, "abc123", hash)

	assert.True(t, CheckPasswordHash("abc123", hash))
	assert.False(t, CheckPasswordHash("abc124", hash))
}

func TestValidatePasswordPolicy(t *testing.T) {
	assert.Empty(t, ValidatePasswordPolicy("abc123"))
	assert.Empty(t, ValidatePasswordPolicy("000000"))

	assert.Len(t, ValidatePasswordPolicy("a1"), 1)     // too short
	assert.Len(t, ValidatePasswordPolicy("abcdef"), 1) // no digit
	assert.Len(t, ValidatePasswordPolicy("abc"), 2)    // both
}
