package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	pwd := "testpass"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))

	// salt randomization: same input, different digests
	hash2, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
	require.NoError(t, ComparePassword(hash2, pwd))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	hash, err := HashPassword("right")
	require.NoError(t, err)
	require.Error(t, ComparePassword(hash, "wrong"))
	require.Error(t, ComparePassword("not-a-bcrypt-digest", "right"))
}
