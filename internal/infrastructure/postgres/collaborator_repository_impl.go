package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderplan/wanderplan/internal/domain/entity"
	"github.com/wanderplan/wanderplan/internal/domain/repository"
)

type CollaboratorRepository struct {
	pool *pgxpool.Pool
}

func NewCollaboratorRepository(pool *pgxpool.Pool) *CollaboratorRepository {
	return &CollaboratorRepository{pool: pool}
}

func (r *CollaboratorRepository) Create(c *entity.Collaborator) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO collaborators (id, itinerary_id, user_id, role, invited_at, accepted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, c.ID, c.ItineraryID, c.UserID, string(c.Role), c.InvitedAt, c.AcceptedAt)

	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CollaboratorRepository) Get(itineraryID, userID string) (*entity.Collaborator, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT id, itinerary_id, user_id, role, invited_at, accepted_at, created_at, updated_at
		FROM collaborators
		WHERE itinerary_id = $1 AND user_id = $2
	`, itineraryID, userID)
	return scanCollaborator(row)
}

func (r *CollaboratorRepository) ListByItinerary(itineraryID string) ([]*entity.Collaborator, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, itinerary_id, user_id, role, invited_at, accepted_at, created_at, updated_at
		FROM collaborators
		WHERE itinerary_id = $1
		ORDER BY invited_at
	`, itineraryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Collaborator, 0)
	for rows.Next() {
		c, err := scanCollaborator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CollaboratorRepository) Update(c *entity.Collaborator) error {
	ctx := context.Background()
	c.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE collaborators
		SET role = $1, accepted_at = $2, updated_at = $3
		WHERE itinerary_id = $4 AND user_id = $5
	`, string(c.Role), c.AcceptedAt, c.UpdatedAt, c.ItineraryID, c.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CollaboratorRepository) Delete(itineraryID, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM collaborators
		WHERE itinerary_id = $1 AND user_id = $2
	`, itineraryID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanCollaborator(row pgx.Row) (*entity.Collaborator, error) {
	c := &entity.Collaborator{}
	var role string
	if err := row.Scan(&c.ID, &c.ItineraryID, &c.UserID, &role, &c.InvitedAt, &c.AcceptedAt,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	c.Role = entity.Role(role)
	return c, nil
}

var _ repository.CollaboratorRepository = (*CollaboratorRepository)(nil)
