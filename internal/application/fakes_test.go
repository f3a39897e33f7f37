package application_test

import (
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/internal/domain/repository"
)

// In-memory repositories backing the service tests.

type fakeItineraryRepo struct {
	byID map[string]*entity.Itinerary

	// Delete cascades into these, matching the repository contract.
	items         *fakeItemRepo
	collaborators *fakeCollaboratorRepo
}

func newFakeItineraryRepo(items *fakeItemRepo, collaborators *fakeCollaboratorRepo) *fakeItineraryRepo {
	return &fakeItineraryRepo{
		byID:          map[string]*entity.Itinerary{},
		items:         items,
		collaborators: collaborators,
	}
}

func (r *fakeItineraryRepo) Create(it *entity.Itinerary) error {
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *fakeItineraryRepo) GetByID(id string) (*entity.Itinerary, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItineraryRepo) ListByOwner(ownerID string) ([]*entity.Itinerary, error) {
	out := []*entity.Itinerary{}
	for _, it := range r.byID {
		if it.OwnerID == ownerID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItineraryRepo) ListSharedWith(userID string) ([]*entity.Itinerary, error) {
	return []*entity.Itinerary{}, nil
}

func (r *fakeItineraryRepo) Update(it *entity.Itinerary) error {
	if _, ok := r.byID[it.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *it
	r.byID[it.ID] = &cp
	return nil
}

func (r *fakeItineraryRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	for itemID, item := range r.items.byID {
		if item.ItineraryID == id {
			delete(r.items.byID, itemID)
		}
	}
	for k := range r.collaborators.byKey {
		if k.itineraryID == id {
			delete(r.collaborators.byKey, k)
		}
	}
	return nil
}

type collabKey struct{ itineraryID, userID string }

type fakeCollaboratorRepo struct {
	byKey map[collabKey]*entity.Collaborator
}

func newFakeCollaboratorRepo() *fakeCollaboratorRepo {
	return &fakeCollaboratorRepo{byKey: map[collabKey]*entity.Collaborator{}}
}

func (r *fakeCollaboratorRepo) Create(c *entity.Collaborator) error {
	k := collabKey{c.ItineraryID, c.UserID}
	if _, ok := r.byKey[k]; ok {
		return repository.ErrDuplicate
	}
	cp := *c
	r.byKey[k] = &cp
	return nil
}

func (r *fakeCollaboratorRepo) Get(itineraryID, userID string) (*entity.Collaborator, error) {
	c, ok := r.byKey[collabKey{itineraryID, userID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCollaboratorRepo) ListByItinerary(itineraryID string) ([]*entity.Collaborator, error) {
	out := []*entity.Collaborator{}
	for _, c := range r.byKey {
		if c.ItineraryID == itineraryID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCollaboratorRepo) Update(c *entity.Collaborator) error {
	k := collabKey{c.ItineraryID, c.UserID}
	if _, ok := r.byKey[k]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	r.byKey[k] = &cp
	return nil
}

func (r *fakeCollaboratorRepo) Delete(itineraryID, userID string) error {
	k := collabKey{itineraryID, userID}
	if _, ok := r.byKey[k]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byKey, k)
	return nil
}

type fakeItemRepo struct {
	byID map[string]*entity.ItineraryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byID: map[string]*entity.ItineraryItem{}}
}

func (r *fakeItemRepo) Create(item *entity.ItineraryItem) error {
	cp := *item
	r.byID[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.ItineraryItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) ListByItinerary(itineraryID string) ([]*entity.ItineraryItem, error) {
	out := []*entity.ItineraryItem{}
	for _, item := range r.byID {
		if item.ItineraryID == itineraryID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.ItineraryItem) error {
	if _, ok := r.byID[item.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *item
	r.byID[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}
