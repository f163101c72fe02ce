package cryptox_test

import (
	"testing"

	"github.com/posturekit/kioskauth/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("hunter2")
	require.NoError(t, err)
	require.Contains(t, hash, "$argon2id$v=19$")

	require.NoError(t, cryptox.VerifyPassword("hunter2", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("hunter3", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	require.Error(t, cryptox.VerifyPassword("x", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$abc$def"))
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("same")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestNewSessionKey(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		key, err := cryptox.NewSessionKey()
		require.NoError(t, err)
		require.Len(t, key, cryptox.SessionKeySize*2) // hex encoded

		_, dup := seen[key]
		require.False(t, dup)
		seen[key] = struct{}{}
	}
}
