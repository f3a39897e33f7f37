package application

import (
	"errors"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	repo "github.com/wanderplan/wanderplan/internal/domain/repository"
)

// Authorizer loads an itinerary with its collaborator records and runs the
// pure access resolver over them. Loading and deciding are deliberately two
// steps: storage hands plain values to the resolver, and the decision is an
// explicit return value threaded to the caller.
type Authorizer struct {
	Itineraries   repo.ItineraryRepository
	Collaborators repo.CollaboratorRepository
}

func NewAuthorizer(itineraries repo.ItineraryRepository, collaborators repo.CollaboratorRepository) *Authorizer {
	return &Authorizer{Itineraries: itineraries, Collaborators: collaborators}
}

// Resolve loads the snapshot and computes the caller's decision. The records
// are returned too, for callers that need the collaborator set afterwards.
func (a *Authorizer) Resolve(userID, itineraryID string) (access.Decision, []*entity.Collaborator, error) {
	it, err := a.Itineraries.GetByID(itineraryID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return access.Decision{}, nil, ErrItineraryNotFound
		}
		return access.Decision{}, nil, err
	}
	recs, err := a.Collaborators.ListByItinerary(itineraryID)
	if err != nil {
		return access.Decision{}, nil, err
	}
	return access.Resolve(userID, it, recs), recs, nil
}

// Require resolves and then demands the capability, translating a refusal
// into the matching denial error.
func (a *Authorizer) Require(userID, itineraryID string, c access.Capability) (access.Decision, error) {
	d, _, err := a.Resolve(userID, itineraryID)
	if err != nil {
		return d, err
	}
	if !d.Allows(c) {
		return d, denialError(d.Denial(c))
	}
	return d, nil
}
