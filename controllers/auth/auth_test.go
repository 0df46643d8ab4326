package authController

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLegacyHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, isLegacyHash(string(hash)))
	assert.True(t, isLegacyHash("admin1234"))
	assert.True(t, isLegacyHash(""))
}
