package repository

import "github.com/wanderplan/wanderplan/internal/domain/entity"

// ItemRepository stores itinerary items.
type ItemRepository interface {
	Create(item *entity.ItineraryItem) error
	GetByID(id string) (*entity.ItineraryItem, error)
	ListByItinerary(itineraryID string) ([]*entity.ItineraryItem, error)
	Update(item *entity.ItineraryItem) error
	Delete(id string) error
}
