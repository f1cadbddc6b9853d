package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hashed)
	assert.True(t, CheckPassword("secret123", hashed))
}

func TestHashPassword_SaltedOutputsDiffer(t *testing.T) {
	first, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	// Fresh salt per call, but both must verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestHashPassword_CostOutOfRangeFallsBack(t *testing.T) {
	hashed, err := HashPassword("secret123", 99)
	require.NoError(t, err)
	assert.True(t, CheckPassword("secret123", hashed))
}

func TestCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"Correct password", "secret123", hashed, true},
		{"Wrong password", "secret124", hashed, false},
		{"Empty password", "", hashed, false},
		{"Empty hash", "secret123", "", false},
		{"Truncated hash", "secret123", hashed[:10], false},
		{"Foreign scheme", "secret123", "$argon2id$v=19$m=65536,t=3,p=2$abcdef", false},
		{"Garbage hash", "secret123", "not-a-hash-at-all", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.hash))
		})
	}
}
