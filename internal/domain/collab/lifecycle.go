// Package collab holds the collaborator lifecycle state machine:
// invited -> accepted -> role-changed -> removed. All transitions are pure;
// persistence is the caller's concern, and each transition assumes a
// consistent snapshot of the itinerary and its records.
package collab

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

var (
	// ErrDuplicateCollaboration: a record for (itineraryID, userID) already
	// exists, invited or accepted.
	ErrDuplicateCollaboration = errors.New("duplicate-collaboration")
	// ErrNotFound: the referenced collaborator record does not exist. Distinct
	// from an itinerary not being found.
	ErrNotFound = errors.New("not-found")
	// ErrOwnerCollaboration: the itinerary owner can never hold a
	// collaborator record.
	ErrOwnerCollaboration = errors.New("owner cannot be a collaborator")
	// ErrNotInvitee: only the invited user may accept an invitation.
	ErrNotInvitee = errors.New("only the invited user can accept")
	// ErrInvalidRole: role is not one of viewer, editor, admin.
	ErrInvalidRole = errors.New("invalid collaborator role")
)

// Invite creates a new record in the invited state (AcceptedAt nil). The
// target must not be the owner and must not already hold a record, accepted
// or not.
func Invite(it *entity.Itinerary, existing []*entity.Collaborator, targetUserID string, role entity.Role, now time.Time) (*entity.Collaborator, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if targetUserID == it.OwnerID {
		return nil, ErrOwnerCollaboration
	}
	for _, rec := range existing {
		if rec.ItineraryID == it.ID && rec.UserID == targetUserID {
			return nil, ErrDuplicateCollaboration
		}
	}
	return &entity.Collaborator{
		ID:          uuid.NewString(),
		ItineraryID: it.ID,
		UserID:      targetUserID,
		Role:        role,
		InvitedAt:   now,
	}, nil
}

// Accept confirms the invitation. Only the invited user may accept. Accepting
// an already-accepted record is a no-op, not an error; AcceptedAt keeps its
// original value. Returns whether the record changed.
func Accept(rec *entity.Collaborator, actorID string, now time.Time) (bool, error) {
	if actorID != rec.UserID {
		return false, ErrNotInvitee
	}
	if rec.Accepted() {
		return false, nil
	}
	rec.AcceptedAt = &now
	return true, nil
}

// ChangeRole sets a new role on the record. Invited records may have their
// role changed before acceptance. Lowering one's own role below admin is
// allowed; there is no self-protection rule.
func ChangeRole(rec *entity.Collaborator, role entity.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	rec.Role = role
	return nil
}

// MayRemove reports whether the actor can remove the record: anyone holding
// manage-collaborators capability, or the collaborator removing themself
// regardless of their own role.
func MayRemove(actor access.Decision, actorID string, rec *entity.Collaborator) bool {
	if actor.Allows(access.CapManageCollaborators) {
		return true
	}
	return actorID == rec.UserID
}
