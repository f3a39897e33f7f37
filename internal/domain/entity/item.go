package entity

import (
	"time"
)

// ItemType enumerates the bookable unit kinds an itinerary can hold.
type ItemType string

const (
	ItemAccommodation  ItemType = "accommodation"
	ItemActivity       ItemType = "activity"
	ItemRestaurant     ItemType = "restaurant"
	ItemTransportation ItemType = "transportation"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemAccommodation, ItemActivity, ItemRestaurant, ItemTransportation:
		return true
	}
	return false
}

// Coordinates is a lat/lng pair. Both values are always present together;
// a location without coordinates carries a nil *Coordinates instead.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is an optional structured place attached to an item.
type Location struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ItineraryItem belongs to exactly one Itinerary and inherits its access
// decision; it is never access-controlled independently.
type ItineraryItem struct {
	ID          string
	ItineraryID string
	Type        ItemType
	Title       string
	Description string
	Location    *Location
	StartTime   time.Time
	EndTime     *time.Time
	Cost        *float64
	Notes       string
	Photos      []string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemPatch is a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Type        *ItemType
	Title       *string
	Description *string
	Location    *Location
	StartTime   *time.Time
	EndTime     *time.Time
	Cost        *float64
	Notes       *string
	Photos      *[]string
}

func (it ItineraryItem) WithPatch(p ItemPatch) ItineraryItem {
	if p.Type != nil {
		it.Type = *p.Type
	}
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Location != nil {
		it.Location = p.Location
	}
	if p.StartTime != nil {
		it.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		it.EndTime = p.EndTime
	}
	if p.Cost != nil {
		it.Cost = p.Cost
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	if p.Photos != nil {
		it.Photos = *p.Photos
	}
	return it
}

// Validate collects every field invariant violation on the item.
func (it *ItineraryItem) Validate() error {
	var v violations

	if !it.Type.Valid() {
		v.add("type", "must be one of: accommodation, activity, restaurant, transportation")
	}
	if l := len(it.Title); l < 1 || l > 255 {
		v.add("title", "must be between 1 and 255 characters")
	}
	if it.Location != nil && it.Location.Name == "" {
		v.add("location", "must have a name")
	}
	if it.StartTime.IsZero() {
		v.add("startTime", "is required")
	}
	if it.EndTime != nil && !it.EndTime.After(it.StartTime) {
		v.add("endTime", "must be after start time")
	}
	if it.Cost != nil && *it.Cost < 0 {
		v.add("cost", "must be a positive number")
	}

	return v.err()
}
