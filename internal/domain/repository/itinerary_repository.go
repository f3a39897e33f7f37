package repository

import "github.com/wanderplan/wanderplan/internal/domain/entity"

// ItineraryRepository defines the interface for itinerary storage. Delete
// removes the itinerary together with all its items and collaborator records
// in one transaction, or nothing at all.
type ItineraryRepository interface {
	Create(it *entity.Itinerary) error
	GetByID(id string) (*entity.Itinerary, error)
	ListByOwner(ownerID string) ([]*entity.Itinerary, error)
	ListSharedWith(userID string) ([]*entity.Itinerary, error)
	Update(it *entity.Itinerary) error
	Delete(id string) error
}
