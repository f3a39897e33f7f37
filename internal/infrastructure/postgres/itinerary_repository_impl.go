package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/internal/domain/repository"
)

type ItineraryRepository struct {
	pool *pgxpool.Pool
}

func NewItineraryRepository(pool *pgxpool.Pool) *ItineraryRepository {
	return &ItineraryRepository{pool: pool}
}

const itineraryColumns = `id, owner_id, title, description, destination, start_date, end_date,
		budget, currency, is_public, cover_url, created_at, updated_at`

func scanItinerary(row pgx.Row) (*entity.Itinerary, error) {
	it := &entity.Itinerary{}
	if err := row.Scan(&it.ID, &it.OwnerID, &it.Title, &it.Description, &it.Destination,
		&it.StartDate, &it.EndDate, &it.Budget, &it.Currency, &it.IsPublic, &it.CoverURL,
		&it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *ItineraryRepository) Create(it *entity.Itinerary) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itineraries (id, owner_id, title, description, destination, start_date, end_date,
			budget, currency, is_public, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`, it.ID, it.OwnerID, it.Title, it.Description, it.Destination, it.StartDate, it.EndDate,
		it.Budget, it.Currency, it.IsPublic, it.CoverURL)

	return row.Scan(&it.CreatedAt, &it.UpdatedAt)
}

func (r *ItineraryRepository) GetByID(id string) (*entity.Itinerary, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries
		WHERE id = $1
	`, id)
	return scanItinerary(row)
}

func (r *ItineraryRepository) ListByOwner(ownerID string) ([]*entity.Itinerary, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+itineraryColumns+`
		FROM itineraries
		WHERE owner_id = $1
		ORDER BY start_date
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItineraries(rows)
}

// ListSharedWith returns itineraries where the user holds an accepted
// collaborator record. Pending invitations are not access and are excluded.
func (r *ItineraryRepository) ListSharedWith(userID string) ([]*entity.Itinerary, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT i.id, i.owner_id, i.title, i.description, i.destination, i.start_date, i.end_date,
			i.budget, i.currency, i.is_public, i.cover_url, i.created_at, i.updated_at
		FROM itineraries i
		JOIN collaborators c ON c.itinerary_id = i.id
		WHERE c.user_id = $1 AND c.accepted_at IS NOT NULL
		ORDER BY i.start_date
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItineraries(rows)
}

func collectItineraries(rows pgx.Rows) ([]*entity.Itinerary, error) {
	out := make([]*entity.Itinerary, 0)
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Update persists every mutable field; owner_id is deliberately absent from
// the SET list so ownership can never change through this path.
func (r *ItineraryRepository) Update(it *entity.Itinerary) error {
	ctx := context.Background()
	it.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE itineraries
		SET title = $1, description = $2, destination = $3, start_date = $4, end_date = $5,
			budget = $6, currency = $7, is_public = $8, cover_url = $9, updated_at = $10
		WHERE id = $11
	`, it.Title, it.Description, it.Destination, it.StartDate, it.EndDate,
		it.Budget, it.Currency, it.IsPublic, it.CoverURL, it.UpdatedAt, it.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the itinerary and cascades its items and collaborator
// records inside one transaction: either everything goes or nothing does.
func (r *ItineraryRepository) Delete(id string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_items WHERE itinerary_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM collaborators WHERE itinerary_id = $1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ repository.ItineraryRepository = (*ItineraryRepository)(nil)
