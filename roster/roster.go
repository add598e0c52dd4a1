// Package roster loads and queries the static user roster. The roster file
// is the single source of user identity: accounts are provisioned by editing
// the file, never through the API.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"staffdesk/models"
)

// Roster is the ordered set of known users.
type Roster []models.User

// rosterEntry mirrors the on-disk format, which carries the password in
// clear. models.User hides the password from JSON output, so the file is
// decoded through this shape instead.
type rosterEntry struct {
	ID       int         `json:"id"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}

// Load reads the roster from a JSON file.
func Load(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}

	var entries []rosterEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	users := make(Roster, 0, len(entries))
	for i, e := range entries {
		if e.Username == "" {
			return nil, fmt.Errorf("roster entry %d: missing username", i)
		}
		if !e.Role.Valid() {
			return nil, fmt.Errorf("roster entry %d (%s): unknown role %q", i, e.Username, e.Role)
		}
		users = append(users, models.User{
			ID:       e.ID,
			Username: e.Username,
			Password: e.Password,
			FullName: e.FullName,
			Role:     e.Role,
		})
	}
	return users, nil
}

// FindByID returns the user with the given id, or nil if no such user exists.
func (r Roster) FindByID(id int) *models.User {
	for i := range r {
		if r[i].ID == id {
			u := r[i]
			return &u
		}
	}
	return nil
}
