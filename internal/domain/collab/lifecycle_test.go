package collab_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/collab"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

var now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func itinerary() *entity.Itinerary {
	return &entity.Itinerary{ID: "itn-1", OwnerID: "owner-1"}
}

func TestInvite(t *testing.T) {
	rec, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleEditor, now)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "itn-1", rec.ItineraryID)
	assert.Equal(t, "user-2", rec.UserID)
	assert.Equal(t, entity.RoleEditor, rec.Role)
	assert.Equal(t, now, rec.InvitedAt)
	assert.Nil(t, rec.AcceptedAt)
	assert.False(t, rec.Accepted())
}

func TestInviteOwnerRejected(t *testing.T) {
	_, err := collab.Invite(itinerary(), nil, "owner-1", entity.RoleViewer, now)
	assert.ErrorIs(t, err, collab.ErrOwnerCollaboration)
}

func TestInviteDuplicateRejected(t *testing.T) {
	existing, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleViewer, now)
	require.NoError(t, err)

	// Pending and accepted records both block a second invitation.
	_, err = collab.Invite(itinerary(), []*entity.Collaborator{existing}, "user-2", entity.RoleEditor, now)
	assert.ErrorIs(t, err, collab.ErrDuplicateCollaboration)

	accepted := now.Add(time.Hour)
	existing.AcceptedAt = &accepted
	_, err = collab.Invite(itinerary(), []*entity.Collaborator{existing}, "user-2", entity.RoleEditor, now)
	assert.ErrorIs(t, err, collab.ErrDuplicateCollaboration)
}

func TestInviteInvalidRole(t *testing.T) {
	_, err := collab.Invite(itinerary(), nil, "user-2", entity.Role("superuser"), now)
	assert.ErrorIs(t, err, collab.ErrInvalidRole)
}

func TestAccept(t *testing.T) {
	rec, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleViewer, now)
	require.NoError(t, err)

	changed, err := collab.Accept(rec, "user-2", now.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, changed)
	require.NotNil(t, rec.AcceptedAt)
	assert.Equal(t, now.Add(time.Hour), *rec.AcceptedAt)
}

func TestAcceptOnlyByInvitee(t *testing.T) {
	rec, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleViewer, now)
	require.NoError(t, err)

	_, err = collab.Accept(rec, "user-3", now)
	assert.ErrorIs(t, err, collab.ErrNotInvitee)
	assert.False(t, rec.Accepted())
}

// Accepting twice keeps the original timestamp.
func TestAcceptIdempotent(t *testing.T) {
	rec, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleViewer, now)
	require.NoError(t, err)

	first := now.Add(time.Hour)
	changed, err := collab.Accept(rec, "user-2", first)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = collab.Accept(rec, "user-2", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, *rec.AcceptedAt)
}

func TestChangeRole(t *testing.T) {
	rec, err := collab.Invite(itinerary(), nil, "user-2", entity.RoleViewer, now)
	require.NoError(t, err)

	// Pending records may have their role changed before acceptance.
	require.NoError(t, collab.ChangeRole(rec, entity.RoleAdmin))
	assert.Equal(t, entity.RoleAdmin, rec.Role)

	assert.ErrorIs(t, collab.ChangeRole(rec, entity.Role("root")), collab.ErrInvalidRole)
	assert.Equal(t, entity.RoleAdmin, rec.Role)
}

func TestMayRemove(t *testing.T) {
	rec := &entity.Collaborator{ItineraryID: "itn-1", UserID: "user-2", Role: entity.RoleViewer}

	admin := access.Decision{Role: access.RoleAdmin}
	editor := access.Decision{Role: access.RoleEditor}
	viewerSelf := access.Decision{Role: access.RoleViewer}

	assert.True(t, collab.MayRemove(admin, "user-9", rec), "admin removes anyone")
	assert.False(t, collab.MayRemove(editor, "user-9", rec), "editor cannot remove others")
	assert.True(t, collab.MayRemove(viewerSelf, "user-2", rec), "self-removal allowed for any role")
}
