package entity

import (
	"time"
)

// Role is the stored collaborator role. The owner is never stored as a
// collaborator; their role is synthesized from Itinerary.OwnerID at
// resolution time.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// Collaborator binds one user to one itinerary. (ItineraryID, UserID) is
// unique: a user holds at most one record per itinerary. AcceptedAt stays nil
// until the invited user confirms; an unaccepted record grants no access.
type Collaborator struct {
	ID          string
	ItineraryID string
	UserID      string
	Role        Role
	InvitedAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Accepted reports whether the invitation has been confirmed.
func (c *Collaborator) Accepted() bool {
	return c.AcceptedAt != nil
}
