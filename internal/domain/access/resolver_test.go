package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

func testItinerary(isPublic bool) *entity.Itinerary {
	return &entity.Itinerary{
		ID:          "itn-1",
		OwnerID:     "owner-1",
		Title:       "Kyoto in Autumn",
		Destination: "Kyoto, Japan",
		StartDate:   time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 17, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
		IsPublic:    isPublic,
	}
}

func acceptedCollaborator(userID string, role entity.Role) *entity.Collaborator {
	now := time.Now()
	return &entity.Collaborator{
		ID:          "col-" + userID,
		ItineraryID: "itn-1",
		UserID:      userID,
		Role:        role,
		InvitedAt:   now.Add(-time.Hour),
		AcceptedAt:  &now,
	}
}

func TestResolveOwner(t *testing.T) {
	d := access.Resolve("owner-1", testItinerary(false), nil)
	assert.Equal(t, access.RoleOwner, d.Role)
	assert.True(t, d.Allows(access.CapRead))
	assert.True(t, d.Allows(access.CapWrite))
	assert.True(t, d.Allows(access.CapManageCollaborators))
	assert.True(t, d.Allows(access.CapDelete))
}

// An anomalous collaborator record for the owner must not demote them.
func TestResolveOwnerPrecedesCollaboratorRecord(t *testing.T) {
	recs := []*entity.Collaborator{acceptedCollaborator("owner-1", entity.RoleViewer)}
	d := access.Resolve("owner-1", testItinerary(false), recs)
	assert.Equal(t, access.RoleOwner, d.Role)
}

func TestResolveAcceptedCollaborators(t *testing.T) {
	cases := []struct {
		stored entity.Role
		want   access.Role
		write  bool
		manage bool
		del    bool
	}{
		{entity.RoleViewer, access.RoleViewer, false, false, false},
		{entity.RoleEditor, access.RoleEditor, true, false, false},
		{entity.RoleAdmin, access.RoleAdmin, true, true, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.stored), func(t *testing.T) {
			recs := []*entity.Collaborator{acceptedCollaborator("user-2", tc.stored)}
			d := access.Resolve("user-2", testItinerary(false), recs)
			require.Equal(t, tc.want, d.Role)
			assert.True(t, d.Allows(access.CapRead))
			assert.Equal(t, tc.write, d.Allows(access.CapWrite))
			assert.Equal(t, tc.manage, d.Allows(access.CapManageCollaborators))
			assert.Equal(t, tc.del, d.Allows(access.CapDelete))
		})
	}
}

func TestResolvePendingInvitationGrantsNothing(t *testing.T) {
	rec := acceptedCollaborator("user-2", entity.RoleAdmin)
	rec.AcceptedAt = nil

	d := access.Resolve("user-2", testItinerary(false), []*entity.Collaborator{rec})
	assert.Equal(t, access.RoleNone, d.Role)
	assert.False(t, d.Allows(access.CapRead))
}

func TestResolvePendingInvitationOnPublicItinerary(t *testing.T) {
	rec := acceptedCollaborator("user-2", entity.RoleEditor)
	rec.AcceptedAt = nil

	d := access.Resolve("user-2", testItinerary(true), []*entity.Collaborator{rec})
	assert.Equal(t, access.RolePublic, d.Role)
	assert.True(t, d.Allows(access.CapRead))
	assert.False(t, d.Allows(access.CapWrite))
}

func TestResolveStranger(t *testing.T) {
	d := access.Resolve("stranger", testItinerary(false), nil)
	assert.Equal(t, access.RoleNone, d.Role)
	assert.False(t, d.Allows(access.CapRead))

	d = access.Resolve("stranger", testItinerary(true), nil)
	assert.Equal(t, access.RolePublic, d.Role)
	assert.True(t, d.Allows(access.CapRead))
	assert.False(t, d.Allows(access.CapWrite))
	assert.False(t, d.Allows(access.CapManageCollaborators))
	assert.False(t, d.Allows(access.CapDelete))
}

func TestResolveIgnoresRecordsOfOtherItineraries(t *testing.T) {
	rec := acceptedCollaborator("user-2", entity.RoleAdmin)
	rec.ItineraryID = "other-itinerary"

	d := access.Resolve("user-2", testItinerary(false), []*entity.Collaborator{rec})
	assert.Equal(t, access.RoleNone, d.Role)
}

func TestDenialReasons(t *testing.T) {
	d := access.Resolve("stranger", testItinerary(false), nil)
	assert.Equal(t, access.ReasonAccessDenied, d.Denial(access.CapRead))
	assert.Equal(t, access.ReasonEditAccessDenied, d.Denial(access.CapWrite))
	assert.Equal(t, access.ReasonDeleteDenied, d.Denial(access.CapDelete))
	assert.Equal(t, access.ReasonAccessDenied, d.Denial(access.CapManageCollaborators))
}

// A non-owner delete surfaces the generic access-denied code on the wire.
func TestReasonCodes(t *testing.T) {
	assert.Equal(t, "ITINERARY_NOT_FOUND", access.ReasonItineraryNotFound.Code())
	assert.Equal(t, "ACCESS_DENIED", access.ReasonAccessDenied.Code())
	assert.Equal(t, "EDIT_ACCESS_DENIED", access.ReasonEditAccessDenied.Code())
	assert.Equal(t, "ACCESS_DENIED", access.ReasonDeleteDenied.Code())
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t,
		[]access.Capability{access.CapRead, access.CapWrite, access.CapManageCollaborators, access.CapDelete},
		access.RoleOwner.Capabilities())
	assert.Equal(t,
		[]access.Capability{access.CapRead, access.CapWrite, access.CapManageCollaborators},
		access.RoleAdmin.Capabilities())
	assert.Equal(t, []access.Capability{access.CapRead}, access.RolePublic.Capabilities())
	assert.Empty(t, access.RoleNone.Capabilities())
}

func TestFromStored(t *testing.T) {
	assert.Equal(t, access.RoleViewer, access.FromStored(entity.RoleViewer))
	assert.Equal(t, access.RoleEditor, access.FromStored(entity.RoleEditor))
	assert.Equal(t, access.RoleAdmin, access.FromStored(entity.RoleAdmin))
	assert.Equal(t, access.RoleNone, access.FromStored(entity.Role("bogus")))
}
