package entity_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
)

func validItinerary() entity.Itinerary {
	return entity.Itinerary{
		ID:          "itn-1",
		OwnerID:     "owner-1",
		Title:       "Kyoto in Autumn",
		Destination: "Kyoto, Japan",
		StartDate:   time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 17, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
	}
}

func details(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Details()
}

func TestItineraryValidateOK(t *testing.T) {
	it := validItinerary()
	assert.NoError(t, it.Validate())
}

func TestItineraryValidateFields(t *testing.T) {
	it := validItinerary()
	it.Title = ""
	it.Destination = strings.Repeat("x", 256)
	it.Description = strings.Repeat("y", 2001)
	neg := -1.0
	it.Budget = &neg
	it.Currency = "usd"

	d := details(t, it.Validate())
	assert.Contains(t, d, "title")
	assert.Contains(t, d, "destination")
	assert.Contains(t, d, "description")
	assert.Contains(t, d, "budget")
	assert.Contains(t, d, "currency")
	assert.Len(t, d, 5, "all violations reported in one pass")
}

func TestItineraryValidateDateOrdering(t *testing.T) {
	it := validItinerary()
	it.EndDate = it.StartDate
	d := details(t, it.Validate())
	assert.Contains(t, d, "endDate")

	it.EndDate = it.StartDate.AddDate(0, 0, -1)
	d = details(t, it.Validate())
	assert.Contains(t, d, "endDate")
}

func TestItineraryWithPatchLeavesReceiverUntouched(t *testing.T) {
	it := validItinerary()
	title := "Osaka food tour"
	end := it.StartDate.AddDate(0, 0, 3)

	updated := it.WithPatch(entity.ItineraryPatch{Title: &title, EndDate: &end})
	assert.Equal(t, "Osaka food tour", updated.Title)
	assert.Equal(t, end, updated.EndDate)
	// Original is a value copy; rejected updates must not leak into it.
	assert.Equal(t, "Kyoto in Autumn", it.Title)
}

// The date invariant applies to the post-update pair: moving only the start
// date past the current end date is rejected.
func TestItineraryPatchedDatePairValidated(t *testing.T) {
	it := validItinerary()
	start := it.EndDate.AddDate(0, 0, 5)

	updated := it.WithPatch(entity.ItineraryPatch{StartDate: &start})
	d := details(t, updated.Validate())
	assert.Contains(t, d, "endDate")
}

func TestItineraryPatchNilFieldsUnchanged(t *testing.T) {
	it := validItinerary()
	pub := true
	updated := it.WithPatch(entity.ItineraryPatch{IsPublic: &pub})

	assert.True(t, updated.IsPublic)
	assert.Equal(t, it.Title, updated.Title)
	assert.Equal(t, it.StartDate, updated.StartDate)
	assert.Equal(t, it.EndDate, updated.EndDate)
	assert.Equal(t, it.Currency, updated.Currency)
}
