package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgjet/internal/shared/constants"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     string
		wantErr  bool
	}{
		{name: "valid requester", userName: "Avery Lin", email: "avery@example.com", password: "s3cret-pass", role: constants.RoleRequester},
		{name: "email normalized", userName: "Avery Lin", email: "  Avery@Example.COM ", password: "s3cret-pass", role: constants.RoleAdmin},
		{name: "bad email", userName: "Avery Lin", email: "not-an-email", password: "s3cret-pass", role: constants.RoleRequester, wantErr: true},
		{name: "short password", userName: "Avery Lin", email: "avery@example.com", password: "short", role: constants.RoleRequester, wantErr: true},
		{name: "unknown role", userName: "Avery Lin", email: "avery@example.com", password: "s3cret-pass", role: "SUPERUSER", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.userName, tt.email, tt.password, tt.role, 4)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "avery@example.com", u.Email())
			assert.Equal(t, tt.role, u.Role())
			assert.True(t, u.CheckPassword(tt.password))
			assert.False(t, u.CheckPassword("wrong-password"))
		})
	}
}
