package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wanderplan/wanderplan/internal/domain/access"
	"github.com/wanderplan/wanderplan/internal/domain/entity"
	repo "github.com/wanderplan/wanderplan/internal/domain/repository"
	"github.com/wanderplan/wanderplan/pkg/helpers"
)

type ItineraryService struct {
	Auth        *Authorizer
	Itineraries repo.ItineraryRepository
	Items       repo.ItemRepository
	Logger      *logrus.Logger
	ES          *elasticsearch.Client
	ESIndex     string
	GCS         *storage.Client
	GCSBucket   string
}

func NewItineraryService(auth *Authorizer, itineraries repo.ItineraryRepository, items repo.ItemRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gcs *storage.Client, gcsBucket string) *ItineraryService {
	return &ItineraryService{
		Auth:        auth,
		Itineraries: itineraries,
		Items:       items,
		Logger:      logger,
		ES:          es,
		ESIndex:     esIndex,
		GCS:         gcs,
		GCSBucket:   gcsBucket,
	}
}

type CreateItineraryInput struct {
	Title       string
	Description string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      *float64
	Currency    string
	IsPublic    bool
}

// Create builds and validates a new itinerary owned by ownerID. Nothing is
// persisted if validation fails.
func (s *ItineraryService) Create(ctx context.Context, ownerID string, in CreateItineraryInput) (*entity.Itinerary, error) {
	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}
	it := &entity.Itinerary{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Destination: in.Destination,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Currency:    currency,
		IsPublic:    in.IsPublic,
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	if err := s.Itineraries.Create(it); err != nil {
		return nil, err
	}
	s.syncIndex(ctx, it)
	return it, nil
}

// Get resolves the caller against the itinerary and returns the decision,
// which carries both the resolved role and the loaded aggregate.
func (s *ItineraryService) Get(ctx context.Context, userID, itineraryID string) (access.Decision, error) {
	d, err := s.Auth.Require(userID, itineraryID, access.CapRead)
	if err != nil {
		return access.Decision{}, err
	}
	return d, nil
}

func (s *ItineraryService) ListOwned(ctx context.Context, userID string) ([]*entity.Itinerary, error) {
	return s.Itineraries.ListByOwner(userID)
}

func (s *ItineraryService) ListShared(ctx context.Context, userID string) ([]*entity.Itinerary, error) {
	return s.Itineraries.ListSharedWith(userID)
}

// Update applies a partial patch under write capability. The patch is applied
// to a copy and validated with the post-update field pair before anything is
// persisted, so a rejected update leaves stored state byte-identical.
func (s *ItineraryService) Update(ctx context.Context, userID, itineraryID string, patch entity.ItineraryPatch) (*entity.Itinerary, error) {
	d, err := s.Auth.Require(userID, itineraryID, access.CapWrite)
	if err != nil {
		return nil, err
	}
	updated := d.Itinerary.WithPatch(patch)
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.Itineraries.Update(&updated); err != nil {
		return nil, err
	}
	s.syncIndex(ctx, &updated)
	return &updated, nil
}

// Delete requires the owner role and cascades items and collaborator records
// atomically with the itinerary.
func (s *ItineraryService) Delete(ctx context.Context, userID, itineraryID string) error {
	if _, err := s.Auth.Require(userID, itineraryID, access.CapDelete); err != nil {
		return err
	}
	if err := s.Itineraries.Delete(itineraryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrItineraryNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, itineraryID)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"itinerary_id": itineraryID, "user_id": userID}).Info("itinerary deleted")
	}
	return nil
}

// Duplicate copies an itinerary the caller can read — including a public one —
// into a new private itinerary owned by the caller. Items are copied;
// collaborator records are not.
func (s *ItineraryService) Duplicate(ctx context.Context, userID, itineraryID string) (*entity.Itinerary, error) {
	d, err := s.Auth.Require(userID, itineraryID, access.CapRead)
	if err != nil {
		return nil, err
	}
	src := d.Itinerary
	dup := &entity.Itinerary{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Title:       src.Title + " (copy)",
		Description: src.Description,
		Destination: src.Destination,
		StartDate:   src.StartDate,
		EndDate:     src.EndDate,
		Budget:      src.Budget,
		Currency:    src.Currency,
		IsPublic:    false,
		CoverURL:    src.CoverURL,
	}
	if err := dup.Validate(); err != nil {
		return nil, err
	}
	if err := s.Itineraries.Create(dup); err != nil {
		return nil, err
	}
	items, err := s.Items.ListByItinerary(src.ID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		copied := *item
		copied.ID = uuid.NewString()
		copied.ItineraryID = dup.ID
		copied.CreatedBy = userID
		if err := s.Items.Create(&copied); err != nil {
			return nil, err
		}
	}
	return dup, nil
}

// UploadCover stores a cover image in GCS and saves its URL on the itinerary.
// Requires write capability.
func (s *ItineraryService) UploadCover(ctx context.Context, userID, itineraryID string, r io.Reader, filename, contentType string) (string, error) {
	d, err := s.Auth.Require(userID, itineraryID, access.CapWrite)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("covers", itineraryID, id+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	it := d.Itinerary
	it.CoverURL = url
	if err := s.Itineraries.Update(it); err != nil {
		return "", err
	}
	s.syncIndex(ctx, it)
	return url, nil
}

// SearchPublic runs a multi_match query over indexed public itineraries.
func (s *ItineraryService) SearchPublic(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"destination^2", "title"},
			},
		},
		"size": size,
	}
	return searchES(ctx, s.ES, s.ESIndex, query)
}

// syncIndex keeps the public search index in step with the row: public
// itineraries are indexed, private ones are removed. Best effort only.
func (s *ItineraryService) syncIndex(ctx context.Context, it *entity.Itinerary) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	if !it.IsPublic {
		s.removeFromIndex(ctx, it.ID)
		return
	}
	doc := map[string]any{
		"id":          it.ID,
		"title":       it.Title,
		"destination": it.Destination,
		"start_date":  it.StartDate.Format("2006-01-02"),
		"end_date":    it.EndDate.Format("2006-01-02"),
		"is_public":   it.IsPublic,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: it.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("itinerary_id", it.ID).Warn("es index failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *ItineraryService) removeFromIndex(ctx context.Context, itineraryID string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: itineraryID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("itinerary_id", itineraryID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
