package models

import (
	"time"

	"github.com/gocql/gocql"
)

// TeamMember is an admin-managed profile shown on the about page. The image
// asset lifecycle is tied 1:1 to ImageURL: replacing the photo deletes the
// old object from storage.
type TeamMember struct {
	ID           gocql.UUID `json:"id"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	Description  string     `json:"description,omitempty"`
	DisplayOrder int        `json:"display_order"`
	Active       bool       `json:"active"`
	ImageURL     string     `json:"image_url,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
