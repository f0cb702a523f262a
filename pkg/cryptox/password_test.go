package cryptox_test

import (
	"strings"
	"testing"

	"github.com/clinsuite/endotrace/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	cryptox.SetPepperPath(t.TempDir() + "/pepper")

	hash, err := cryptox.HashPassword("s3cret-pass")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Contains(t, parts[3], "m=")
	require.Contains(t, parts[3], "t=")
	require.Contains(t, parts[3], "p=")

	require.NoError(t, cryptox.VerifyPassword("s3cret-pass", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong-pass", hash), cryptox.ErrPasswordMismatch)
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	cryptox.SetPepperPath(t.TempDir() + "/pepper")

	a, err := cryptox.HashPassword("same-input")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-input")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	cryptox.SetPepperPath(t.TempDir() + "/pepper")

	require.Error(t, cryptox.VerifyPassword("x", "not-a-phc-string"))
	require.Error(t, cryptox.VerifyPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$abc$def"))
	require.Error(t, cryptox.VerifyPassword("x", "$argon2id$v=18$m=1,t=1,p=1$abc$def"))
}
