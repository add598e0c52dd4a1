package auth

import (
	"testing"

	"staffdesk/models"
	"staffdesk/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() roster.Roster {
	return roster.Roster{
		{ID: 1, Username: "alice", Password: "pw", FullName: "Alice Ivanova", Role: models.RoleEmployee},
		{ID: 2, Username: "bob", Password: "builder", FullName: "Bob Ivanov", Role: models.RoleEmployee},
		{ID: 3, Username: "hr", Password: "hrpass", FullName: "Helen Romero", Role: models.RoleHR},
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		expectedID int
		expectErr  bool
	}{
		{
			name:       "Valid employee credentials",
			username:   "alice",
			password:   "pw",
			expectedID: 1,
		},
		{
			name:       "Valid HR credentials",
			username:   "hr",
			password:   "hrpass",
			expectedID: 3,
		},
		{
			name:      "Wrong password",
			username:  "alice",
			password:  "wrong",
			expectErr: true,
		},
		{
			name:      "Unknown username",
			username:  "mallory",
			password:  "pw",
			expectErr: true,
		},
		{
			name:      "Username is case-sensitive",
			username:  "Alice",
			password:  "pw",
			expectErr: true,
		},
		{
			name:      "Password is case-sensitive",
			username:  "bob",
			password:  "Builder",
			expectErr: true,
		},
		{
			name:      "Credentials from different users do not combine",
			username:  "alice",
			password:  "builder",
			expectErr: true,
		},
		{
			name:      "Empty credentials",
			username:  "",
			password:  "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := Authenticate(tt.username, tt.password, testRoster())

			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, models.HasCode(err, models.CodeInvalidCredentials))
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.expectedID, user.ID)
			assert.Equal(t, tt.username, user.Username)
		})
	}
}

func TestAuthenticateHasNoSideEffects(t *testing.T) {
	r := testRoster()
	before := make(roster.Roster, len(r))
	copy(before, r)

	_, _ = Authenticate("alice", "pw", r)
	_, _ = Authenticate("alice", "nope", r)

	assert.Equal(t, before, r)
}
