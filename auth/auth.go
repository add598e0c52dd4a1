// Package auth validates login credentials against the roster.
package auth

import (
	"staffdesk/models"
	"staffdesk/roster"
)

// Authenticate matches username and password against the roster by exact,
// case-sensitive equality and returns the first matching user. It has no
// side effects; every failure is an INVALID_CREDENTIALS error.
func Authenticate(username, password string, r roster.Roster) (*models.User, error) {
	for i := range r {
		if r[i].Username == username && r[i].Password == password {
			u := r[i]
			return &u, nil
		}
	}
	return nil, models.NewInvalidCredentialsError()
}
