// Package models contains data structures for the application's domain models.
package models

// Role identifies what kind of account a user has. The two roles see
// entirely different views of the tracker, so dispatch on Role is always an
// exhaustive switch rather than a string comparison at the call site.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR:
		return true
	default:
		return false
	}
}

// User represents a roster entry. The roster is static for the lifetime of
// the process; users are never created or mutated by the tracker.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}
