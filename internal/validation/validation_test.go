package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			username: "alice",
			password: "pw1",
			wantErr:  false,
		},
		{
			name:     "empty username",
			username: "",
			password: "pw1",
			wantErr:  true,
		},
		{
			name:     "empty password",
			username: "alice",
			password: "",
			wantErr:  true,
		},
		{
			name:     "both empty",
			username: "",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.username, tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntryInput(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		notes    string
		photoURL string
		wantErr  bool
		errText  string
	}{
		{
			name:     "all fields present",
			title:    "Day 1",
			notes:    "hello",
			photoURL: "http://x/1.png",
			wantErr:  false,
		},
		{
			name:     "missing title",
			title:    "",
			notes:    "hello",
			photoURL: "http://x/1.png",
			wantErr:  true,
			errText:  "title",
		},
		{
			name:     "missing notes and photoUrl",
			title:    "Day 1",
			notes:    "",
			photoURL: "",
			wantErr:  true,
			errText:  "notes, photoUrl",
		},
		{
			name:     "all missing",
			title:    "",
			notes:    "",
			photoURL: "",
			wantErr:  true,
			errText:  "title, notes, photoUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryInput(tt.title, tt.notes, tt.photoURL)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.errText)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseEntryID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{
			name: "valid id",
			raw:  "42",
			want: 42,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "non-integer",
			raw:     "abc",
			wantErr: true,
		},
		{
			name:    "float",
			raw:     "1.5",
			wantErr: true,
		},
		{
			name:    "zero",
			raw:     "0",
			wantErr: true,
		},
		{
			name:    "negative",
			raw:     "-3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseEntryID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id)
			}
		})
	}
}
