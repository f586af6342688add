package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Profile is a row in the profiles table. Role is the sole authorization
// signal: only "admin" profiles may use the admin API.
type Profile struct {
	ID        gocql.UUID `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Password  string     `json:"-"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// IsAdmin is the single capability check used at the authentication
// boundary.
func (p Profile) IsAdmin() bool {
	return p.Role == "admin"
}
