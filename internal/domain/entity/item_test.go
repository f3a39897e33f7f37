package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

func validItem() entity.ItineraryItem {
	return entity.ItineraryItem{
		ID:          "item-1",
		ItineraryID: "itn-1",
		Type:        entity.ItemActivity,
		Title:       "Fushimi Inari at dawn",
		Location:    &entity.Location{Name: "Fushimi Inari Taisha"},
		StartTime:   time.Date(2026, 11, 11, 5, 30, 0, 0, time.UTC),
		CreatedBy:   "owner-1",
	}
}

func TestItemValidateOK(t *testing.T) {
	item := validItem()
	assert.NoError(t, item.Validate())

	// Location and end time are optional.
	item.Location = nil
	item.EndTime = nil
	assert.NoError(t, item.Validate())
}

func TestItemValidateType(t *testing.T) {
	item := validItem()
	item.Type = entity.ItemType("flight")
	d := details(t, item.Validate())
	assert.Contains(t, d, "type")
}

func TestItemValidateFields(t *testing.T) {
	item := validItem()
	item.Title = strings.Repeat("x", 256)
	item.Location = &entity.Location{}
	cost := -10.0
	item.Cost = &cost
	end := item.StartTime.Add(-time.Hour)
	item.EndTime = &end

	d := details(t, item.Validate())
	assert.Contains(t, d, "title")
	assert.Contains(t, d, "location")
	assert.Contains(t, d, "cost")
	assert.Contains(t, d, "endTime")
}

func TestItemWithPatch(t *testing.T) {
	item := validItem()
	title := "Arashiyama bamboo grove"
	typ := entity.ItemRestaurant
	photos := []string{"https://example.com/p1.jpg"}

	updated := item.WithPatch(entity.ItemPatch{Title: &title, Type: &typ, Photos: &photos})
	assert.Equal(t, "Arashiyama bamboo grove", updated.Title)
	assert.Equal(t, entity.ItemRestaurant, updated.Type)
	assert.Equal(t, photos, updated.Photos)
	assert.Equal(t, item.StartTime, updated.StartTime)
	// Receiver untouched
	assert.Equal(t, "Fushimi Inari at dawn", item.Title)
}

func TestItemTypeValid(t *testing.T) {
	for _, typ := range []entity.ItemType{entity.ItemAccommodation, entity.ItemActivity, entity.ItemRestaurant, entity.ItemTransportation} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, entity.ItemType("cruise").Valid())
	assert.False(t, entity.ItemType("").Valid())
}
