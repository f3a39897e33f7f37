// Package access is the authorization core: a pure decision layer that maps a
// requesting user plus a loaded itinerary and its collaborator records to an
// effective role and a set of granted capabilities. It performs no I/O.
package access

import (
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

// Role is the effective role resolved for a user on an itinerary. The stored
// collaborator roles (viewer/editor/admin) form an ordered lattice; owner is a
// synthesized super-role above admin; public and none sit outside the lattice.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RolePublic Role = "public"
	RoleNone   Role = "none"
)

// Capability is a named permission gated by a minimum role.
type Capability string

const (
	CapRead                Capability = "read"
	CapWrite               Capability = "write"
	CapManageCollaborators Capability = "manage-collaborators"
	CapDelete              Capability = "delete"
)

// rank orders the collaborator lattice. Roles outside the lattice (public,
// none) rank below viewer and are handled case by case in Grants.
var rank = map[Role]int{
	RoleNone:   0,
	RolePublic: 0,
	RoleViewer: 1,
	RoleEditor: 2,
	RoleAdmin:  3,
	RoleOwner:  4,
}

// Minimum lattice rank per capability, per the permission table:
//
//	read                  viewer (or public on a public itinerary)
//	write                 editor
//	manage-collaborators  admin
//	delete                owner only
var minRank = map[Capability]int{
	CapRead:                rank[RoleViewer],
	CapWrite:               rank[RoleEditor],
	CapManageCollaborators: rank[RoleAdmin],
	CapDelete:              rank[RoleOwner],
}

// Grants reports whether the role satisfies the capability. Public grants
// read and nothing else.
func (r Role) Grants(c Capability) bool {
	if r == RolePublic {
		return c == CapRead
	}
	if c == CapDelete {
		return r == RoleOwner
	}
	return rank[r] >= minRank[c]
}

// Capabilities returns every capability the role grants.
func (r Role) Capabilities() []Capability {
	all := []Capability{CapRead, CapWrite, CapManageCollaborators, CapDelete}
	out := make([]Capability, 0, len(all))
	for _, c := range all {
		if r.Grants(c) {
			out = append(out, c)
		}
	}
	return out
}

// FromStored maps a stored collaborator role to its effective role.
func FromStored(r entity.Role) Role {
	switch r {
	case entity.RoleAdmin:
		return RoleAdmin
	case entity.RoleEditor:
		return RoleEditor
	case entity.RoleViewer:
		return RoleViewer
	}
	return RoleNone
}
