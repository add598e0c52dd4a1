package roster

import (
	"os"
	"path/filepath"
	"testing"

	"staffdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeRoster(t, `[
		{"id": 1, "username": "alice", "password": "pw", "fullName": "Alice Ivanova", "role": "employee"},
		{"id": 3, "username": "hr", "password": "hrpass", "fullName": "Helen Romero", "role": "hr"}
	]`)

	r, err := Load(path)
	require.NoError(t, err)
	require.Len(t, r, 2)

	assert.Equal(t, "alice", r[0].Username)
	assert.Equal(t, "pw", r[0].Password)
	assert.Equal(t, models.RoleEmployee, r[0].Role)
	assert.Equal(t, models.RoleHR, r[1].Role)
}

func TestLoadRejectsUnknownRole(t *testing.T) {
	path := writeRoster(t, `[{"id": 1, "username": "alice", "password": "pw", "fullName": "A", "role": "admin"}]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
}

func TestLoadRejectsMissingUsername(t *testing.T) {
	path := writeRoster(t, `[{"id": 1, "password": "pw", "fullName": "A", "role": "employee"}]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing username")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestFindByID(t *testing.T) {
	r := Roster{
		{ID: 1, Username: "alice", Role: models.RoleEmployee},
		{ID: 3, Username: "hr", Role: models.RoleHR},
	}

	found := r.FindByID(3)
	require.NotNil(t, found)
	assert.Equal(t, "hr", found.Username)

	assert.Nil(t, r.FindByID(42))
}
