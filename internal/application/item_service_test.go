package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/application"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

func (f *fixture) itemSvc() *application.ItemService {
	return application.NewItemService(f.auth, f.items, nil)
}

func itemInput() application.CreateItemInput {
	return application.CreateItemInput{
		Type:      entity.ItemActivity,
		Title:     "Fushimi Inari at dawn",
		StartTime: time.Date(2026, 11, 11, 5, 30, 0, 0, time.UTC),
	}
}

func TestItemCreateByEditor(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "editor-1", entity.RoleEditor, true)
	svc := f.itemSvc()

	item, err := svc.Create(context.Background(), "editor-1", "itn-1", itemInput())
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "itn-1", item.ItineraryID)
	assert.Equal(t, "editor-1", item.CreatedBy)
}

func TestItemCreateDeniedForViewer(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "viewer-1", entity.RoleViewer, true)
	svc := f.itemSvc()

	_, err := svc.Create(context.Background(), "viewer-1", "itn-1", itemInput())
	assert.ErrorIs(t, err, application.ErrEditAccessDenied)
	assert.Empty(t, f.items.byID)
}

// Public read access never implies item writes.
func TestItemCreateDeniedForPublicReader(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", true)
	svc := f.itemSvc()

	_, err := svc.Create(context.Background(), "stranger", "itn-1", itemInput())
	assert.ErrorIs(t, err, application.ErrEditAccessDenied)
}

func TestItemCreateInvalid(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	svc := f.itemSvc()

	in := itemInput()
	in.Type = entity.ItemType("flight")
	in.Title = ""
	_, err := svc.Create(context.Background(), "owner-1", "itn-1", in)
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, f.items.byID)
}

func TestItemList(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "viewer-1", entity.RoleViewer, true)
	svc := f.itemSvc()
	ctx := context.Background()

	_, err := svc.Create(ctx, "owner-1", "itn-1", itemInput())
	require.NoError(t, err)

	items, err := svc.List(ctx, "viewer-1", "itn-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.List(ctx, "stranger", "itn-1")
	assert.ErrorIs(t, err, application.ErrAccessDenied)
}

func TestItemUpdate(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	svc := f.itemSvc()
	ctx := context.Background()

	item, err := svc.Create(ctx, "owner-1", "itn-1", itemInput())
	require.NoError(t, err)

	title := "Arashiyama bamboo grove"
	updated, err := svc.Update(ctx, "owner-1", "itn-1", item.ID, entity.ItemPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Arashiyama bamboo grove", updated.Title)
}

// Addressing an item through the wrong parent reports absence, not a hint
// that the item exists elsewhere.
func TestItemUpdateWrongParent(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedItinerary("itn-2", "owner-1", false)
	svc := f.itemSvc()
	ctx := context.Background()

	item, err := svc.Create(ctx, "owner-1", "itn-1", itemInput())
	require.NoError(t, err)

	title := "moved"
	_, err = svc.Update(ctx, "owner-1", "itn-2", item.ID, entity.ItemPatch{Title: &title})
	assert.ErrorIs(t, err, application.ErrItemNotFound)
}

func TestItemDelete(t *testing.T) {
	f := newFixture()
	f.seedItinerary("itn-1", "owner-1", false)
	f.seedCollaborator("itn-1", "viewer-1", entity.RoleViewer, true)
	svc := f.itemSvc()
	ctx := context.Background()

	item, err := svc.Create(ctx, "owner-1", "itn-1", itemInput())
	require.NoError(t, err)

	err = svc.Delete(ctx, "viewer-1", "itn-1", item.ID)
	assert.ErrorIs(t, err, application.ErrEditAccessDenied)

	require.NoError(t, svc.Delete(ctx, "owner-1", "itn-1", item.ID))
	assert.Empty(t, f.items.byID)

	err = svc.Delete(ctx, "owner-1", "itn-1", item.ID)
	assert.ErrorIs(t, err, application.ErrItemNotFound)
}
