package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	// PHC-формат с argon2id
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	// Хеш не содержит открытый пароль
	assert.NotContains(t, hash, "pw1")
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	// Одинаковые пароли дают разные хеши благодаря случайной соли
	hash1, err := HashPassword("same-password")
	require.NoError(t, err)

	hash2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "correct password",
			password: "correct-password",
			wantErr:  nil,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			wantErr:  ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{
			name: "empty hash",
			hash: "",
		},
		{
			name: "not argon2id",
			hash: "$bcrypt$whatever",
		},
		{
			name: "truncated",
			hash: "$argon2id$v=19$m=65536,t=1,p=4",
		},
		{
			name: "bad salt encoding",
			hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("password", tt.hash)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}
