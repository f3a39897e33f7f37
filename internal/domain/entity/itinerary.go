package entity

import (
	"regexp"
	"time"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Itinerary is the aggregate root for a trip plan. OwnerID is immutable after
// creation; ownership transfer is not supported.
type Itinerary struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      *float64
	Currency    string
	IsPublic    bool
	CoverURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItineraryPatch is a partial update. Nil fields are left unchanged; they are
// never reset to a zero value.
type ItineraryPatch struct {
	Title       *string
	Description *string
	Destination *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Currency    *string
	IsPublic    *bool
}

// WithPatch returns a copy with only the supplied fields applied. The receiver
// is not modified, so a failed validation of the result leaves prior state
// untouched. OwnerID and ID are not patchable.
func (i Itinerary) WithPatch(p ItineraryPatch) Itinerary {
	if p.Title != nil {
		i.Title = *p.Title
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Destination != nil {
		i.Destination = *p.Destination
	}
	if p.StartDate != nil {
		i.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		i.EndDate = *p.EndDate
	}
	if p.Budget != nil {
		i.Budget = p.Budget
	}
	if p.Currency != nil {
		i.Currency = *p.Currency
	}
	if p.IsPublic != nil {
		i.IsPublic = *p.IsPublic
	}
	return i
}

// Validate checks every field invariant and the date-ordering invariant on the
// post-update pair, collecting all violations.
func (i *Itinerary) Validate() error {
	var v violations

	if l := len(i.Title); l < 1 || l > 255 {
		v.add("title", "must be between 1 and 255 characters")
	}
	if len(i.Description) > 2000 {
		v.add("description", "must not exceed 2000 characters")
	}
	if l := len(i.Destination); l < 1 || l > 255 {
		v.add("destination", "must be between 1 and 255 characters")
	}
	if i.StartDate.IsZero() {
		v.add("startDate", "is required")
	}
	if i.EndDate.IsZero() {
		v.add("endDate", "is required")
	}
	if !i.StartDate.IsZero() && !i.EndDate.IsZero() && !i.EndDate.After(i.StartDate) {
		v.add("endDate", "must be after start date")
	}
	if i.Budget != nil && *i.Budget < 0 {
		v.add("budget", "must be a positive number")
	}
	if !currencyPattern.MatchString(i.Currency) {
		v.add("currency", "must be a valid 3-letter uppercase code")
	}

	return v.err()
}
