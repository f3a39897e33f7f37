package repository

import "github.com/wanderplan/wanderplan/internal/domain/entity"

// CollaboratorRepository stores collaborator records. (itineraryID, userID)
// is unique; Create surfaces a violation as an error so the lifecycle's
// duplicate check also holds under concurrent invites.
type CollaboratorRepository interface {
	Create(c *entity.Collaborator) error
	Get(itineraryID, userID string) (*entity.Collaborator, error)
	ListByItinerary(itineraryID string) ([]*entity.Collaborator, error)
	Update(c *entity.Collaborator) error
	Delete(itineraryID, userID string) error
}
