package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	repo "github.com/wanderplan/wanderplan/internal/domain/repository"
)

// ItemService manages itinerary items. Items carry no access control of their
// own; every operation is gated by the parent itinerary's decision.
type ItemService struct {
	Auth   *Authorizer
	Items  repo.ItemRepository
	Logger *logrus.Logger
}

func NewItemService(auth *Authorizer, items repo.ItemRepository, logger *logrus.Logger) *ItemService {
	return &ItemService{Auth: auth, Items: items, Logger: logger}
}

func (s *ItemService) List(ctx context.Context, userID, itineraryID string) ([]*entity.ItineraryItem, error) {
	if _, err := s.Auth.Require(userID, itineraryID, access.CapRead); err != nil {
		return nil, err
	}
	return s.Items.ListByItinerary(itineraryID)
}

type CreateItemInput struct {
	Type        entity.ItemType
	Title       string
	Description string
	Location    *entity.Location
	StartTime   time.Time
	EndTime     *time.Time
	Cost        *float64
	Notes       string
	Photos      []string
}

func (s *ItemService) Create(ctx context.Context, userID, itineraryID string, in CreateItemInput) (*entity.ItineraryItem, error) {
	if _, err := s.Auth.Require(userID, itineraryID, access.CapWrite); err != nil {
		return nil, err
	}
	item := &entity.ItineraryItem{
		ID:          uuid.NewString(),
		ItineraryID: itineraryID,
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Cost:        in.Cost,
		Notes:       in.Notes,
		Photos:      in.Photos,
		CreatedBy:   userID,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if err := s.Items.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, userID, itineraryID, itemID string, patch entity.ItemPatch) (*entity.ItineraryItem, error) {
	if _, err := s.Auth.Require(userID, itineraryID, access.CapWrite); err != nil {
		return nil, err
	}
	item, err := s.getOwned(itineraryID, itemID)
	if err != nil {
		return nil, err
	}
	updated := item.WithPatch(patch)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.Items.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ItemService) Delete(ctx context.Context, userID, itineraryID, itemID string) error {
	if _, err := s.Auth.Require(userID, itineraryID, access.CapWrite); err != nil {
		return err
	}
	if _, err := s.getOwned(itineraryID, itemID); err != nil {
		return err
	}
	if err := s.Items.Delete(itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// getOwned fetches the item and verifies it belongs to the itinerary the
// caller was authorized against; an item under a different parent is reported
// as absent rather than leaking its existence.
func (s *ItemService) getOwned(itineraryID, itemID string) (*entity.ItineraryItem, error) {
	item, err := s.Items.GetByID(itemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.ItineraryID != itineraryID {
		return nil, ErrItemNotFound
	}
	return item, nil
}
