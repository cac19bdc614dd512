package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras/config"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // min cost keeps the test fast
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)

	return hasher
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("senha-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, hasher.Check("senha-secreta", hash))
	assert.False(t, hasher.Check("senha-errada", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)
	second, err := hasher.Hash("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_CheckAgainstGarbageHash(t *testing.T) {
	hasher := newTestHasher(t)

	assert.False(t, hasher.Check("qualquer", "not-a-bcrypt-hash"))
}
