package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/collab"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

func (f *fixture) collaboratorSvc() *application.CollaboratorService {
	return application.NewCollaboratorService(f.auth, f.collaborators, f.users, nil, nil, "http://localhost/invitations", false)
}

func (f *fixture) seedUser(id, email, name string) {
	_ = f.users.Create(&entity.User{ID: id, Email: email, Name: name})
}

func TestCollaboratorInvite(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedUser("user-2", "friend@example.com", "Friend")
	svc := f.collaboratorSvc()

	rec, err := svc.Invite(context.Background(), "owner-1", "itn-1", "friend@example.com", entity.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, "user-2", rec.UserID)
	assert.Equal(t, entity.RoleEditor, rec.Role)
	assert.False(t, rec.Accepted())

	stored, err := f.collaborators.Get("itn-1", "user-2")
	require.NoError(t, err)
	assert.False(t, stored.Accepted())
}

func TestCollaboratorInviteRequiresManage(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedUser("user-2", "friend@example.com", "Friend")
	f.seedCollaborator("itn-1", "editor-1", entity.RoleEditor, true)
	f.seedCollaborator("itn-1", "admin-1", entity.RoleAdmin, true)
	svc := f.collaboratorSvc()
	ctx := context.Background()

	_, err := svc.Invite(ctx, "editor-1", "itn-1", "friend@example.com", entity.RoleViewer)
	assert.ErrorIs(t, err, application.ErrAccessDenied, "editors cannot manage collaborators")

	_, err = svc.Invite(ctx, "admin-1", "itn-1", "friend@example.com", entity.RoleViewer)
	assert.NoError(t, err, "admins can invite")
}

func TestCollaboratorInviteDuplicate(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedUser("user-2", "friend@example.com", "Friend")
	svc := f.collaboratorSvc()
	ctx := context.Background()

	_, err := svc.Invite(ctx, "owner-1", "itn-1", "friend@example.com", entity.RoleViewer)
	require.NoError(t, err)

	_, err = svc.Invite(ctx, "owner-1", "itn-1", "friend@example.com", entity.RoleEditor)
	assert.ErrorIs(t, err, collab.ErrDuplicateCollaboration)
}

func TestCollaboratorInviteUnknownEmail(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	svc := f.collaboratorSvc()

	_, err := svc.Invite(context.Background(), "owner-1", "itn-1", "nobody@example.com", entity.RoleViewer)
	assert.ErrorIs(t, err, application.ErrUserNotFound)
}

func TestCollaboratorInviteOwnerRejected(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedUser("owner-1", "owner@example.com", "Owner")
	svc := f.collaboratorSvc()

	_, err := svc.Invite(context.Background(), "owner-1", "itn-1", "owner@example.com", entity.RoleAdmin)
	assert.ErrorIs(t, err, collab.ErrOwnerCollaboration)
}

func TestCollaboratorAccept(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleEditor, false)
	svc := f.collaboratorSvc()
	ctx := context.Background()

	rec, err := svc.Accept(ctx, "user-2", "itn-1")
	require.NoError(t, err)
	assert.True(t, rec.Accepted())

	stored, _ := f.collaborators.Get("itn-1", "user-2")
	require.True(t, stored.Accepted())
	first := *stored.AcceptedAt

	// Accepting again is a no-op keeping the original timestamp.
	rec, err = svc.Accept(ctx, "user-2", "itn-1")
	require.NoError(t, err)
	assert.Equal(t, first, *rec.AcceptedAt)
}

func TestCollaboratorAcceptWithoutInvitation(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	svc := f.collaboratorSvc()

	_, err := svc.Accept(context.Background(), "user-2", "itn-1")
	assert.ErrorIs(t, err, collab.ErrNotFound)
}

func TestCollaboratorChangeRole(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleViewer, true)
	f.seedCollaborator("itn-1", "admin-1", entity.RoleAdmin, true)
	svc := f.collaboratorSvc()
	ctx := context.Background()

	rec, err := svc.ChangeRole(ctx, "admin-1", "itn-1", "user-2", entity.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, rec.Role)

	// Lowering one's own role is allowed; there is no self-protection rule.
	rec, err = svc.ChangeRole(ctx, "admin-1", "itn-1", "admin-1", entity.RoleViewer)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, rec.Role)

	// The demotion takes effect immediately.
	_, err = svc.ChangeRole(ctx, "admin-1", "itn-1", "user-2", entity.RoleAdmin)
	assert.ErrorIs(t, err, application.ErrAccessDenied)
}

func TestCollaboratorChangeRoleMissingRecord(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	svc := f.collaboratorSvc()

	_, err := svc.ChangeRole(context.Background(), "owner-1", "itn-1", "ghost", entity.RoleEditor)
	assert.ErrorIs(t, err, collab.ErrNotFound)
}

func TestCollaboratorRemove(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleViewer, true)
	svc := f.collaboratorSvc()

	require.NoError(t, svc.Remove(context.Background(), "owner-1", "itn-1", "user-2"))
	_, err := f.collaborators.Get("itn-1", "user-2")
	assert.Error(t, err)
}

// A viewer may remove themself even though they hold no manage capability.
func TestCollaboratorSelfRemoval(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleViewer, true)
	f.seedCollaborator("itn-1", "user-3", entity.RoleViewer, true)
	svc := f.collaboratorSvc()
	ctx := context.Background()

	err := svc.Remove(ctx, "user-2", "itn-1", "user-3")
	assert.ErrorIs(t, err, application.ErrAccessDenied, "viewers cannot remove others")

	require.NoError(t, svc.Remove(ctx, "user-2", "itn-1", "user-2"))
}

// Declining an invitation is a removal of the pending record by the invitee.
func TestCollaboratorDeclineInvitation(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleEditor, false)
	svc := f.collaboratorSvc()

	require.NoError(t, svc.Remove(context.Background(), "user-2", "itn-1", "user-2"))
	_, err := f.collaborators.Get("itn-1", "user-2")
	assert.Error(t, err)
}

func TestCollaboratorList(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "user-2", entity.RoleEditor, true)
	f.seedCollaborator("itn-1", "user-3", entity.RoleViewer, false)
	svc := f.collaboratorSvc()
	ctx := context.Background()

	recs, err := svc.List(ctx, "owner-1", "itn-1")
	require.NoError(t, err)
	assert.Len(t, recs, 2, "pending invitations are listed too")

	recs, err = svc.List(ctx, "user-2", "itn-1")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = svc.List(ctx, "user-3", "itn-1")
	assert.ErrorIs(t, err, application.ErrAccessDenied, "pending invitee cannot read")
}
