package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/internal/domain/repository"
)

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

func (r *ItemRepository) Create(item *entity.ItineraryItem) error {
	ctx := context.Background()
	loc, err := marshalLocation(item.Location)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO itinerary_items (id, itinerary_id, type, title, description, location,
			start_time, end_time, cost, notes, photos, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`, item.ID, item.ItineraryID, string(item.Type), item.Title, item.Description, loc,
		item.StartTime, item.EndTime, item.Cost, item.Notes, item.Photos, item.CreatedBy)

	return row.Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *ItemRepository) GetByID(id string) (*entity.ItineraryItem, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, itinerary_id, type, title, description, location, start_time, end_time,
			cost, notes, photos, created_by, created_at, updated_at
		FROM itinerary_items
		WHERE id = $1
	`, id)
	return scanItem(row)
}

func (r *ItemRepository) ListByItinerary(itineraryID string) ([]*entity.ItineraryItem, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, itinerary_id, type, title, description, location, start_time, end_time,
			cost, notes, photos, created_by, created_at, updated_at
		FROM itinerary_items
		WHERE itinerary_id = $1
		ORDER BY start_time
	`, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.ItineraryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *ItemRepository) Update(item *entity.ItineraryItem) error {
	ctx := context.Background()
	item.UpdatedAt = time.Now()
	loc, err := marshalLocation(item.Location)
	if err != nil {
		return err
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE itinerary_items
		SET type = $1, title = $2, description = $3, location = $4, start_time = $5,
			end_time = $6, cost = $7, notes = $8, photos = $9, updated_at = $10
		WHERE id = $11
	`, string(item.Type), item.Title, item.Description, loc, item.StartTime,
		item.EndTime, item.Cost, item.Notes, item.Photos, item.UpdatedAt, item.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM itinerary_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func marshalLocation(loc *entity.Location) ([]byte, error) {
	if loc == nil {
		return nil, nil
	}
	return json.Marshal(loc)
}

func scanItem(row pgx.Row) (*entity.ItineraryItem, error) {
	item := &entity.ItineraryItem{}
	var typ string
	var loc []byte
	if err := row.Scan(&item.ID, &item.ItineraryID, &typ, &item.Title, &item.Description, &loc,
		&item.StartTime, &item.EndTime, &item.Cost, &item.Notes, &item.Photos, &item.CreatedBy,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	item.Type = entity.ItemType(typ)
	if len(loc) > 0 {
		item.Location = &entity.Location{}
		if err := json.Unmarshal(loc, item.Location); err != nil {
			return nil, err
		}
	}
	return item, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
