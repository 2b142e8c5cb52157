package password_test

import (
	"testing"

	"repairdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, password.Verify("secret123", hash))
	assert.False(t, password.Verify("wrong", hash))
}

func TestVerifyGarbageHash(t *testing.T) {
	assert.False(t, password.Verify("secret123", "not-a-bcrypt-hash"))
}
