package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

type creatorRepository struct {
	pool *pgxpool.Pool
}

// NewCreatorRepository instantiates a Postgres-backed creator repository.
func NewCreatorRepository(pool *pgxpool.Pool) repository.CreatorRepository {
	return &creatorRepository{pool: pool}
}

func (r *creatorRepository) GetByUserID(ctx context.Context, userID string) (*domain.Creator, error) {
	const query = `
		SELECT user_id, tiktok_connected, COALESCE(tiktok_username, ''), created_at, updated_at
		FROM creators
		WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var creator domain.Creator
	if err := row.Scan(
		&creator.UserID,
		&creator.TikTokConnected,
		&creator.TikTokUsername,
		&creator.CreatedAt,
		&creator.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCreatorNotFound
		}
		return nil, err
	}

	return &creator, nil
}

// EnsureExists lazily creates the creator row with tiktok_connected=false.
// ON CONFLICT DO NOTHING keeps concurrent first requests from racing into a
// duplicate or clobbering an already-connected record.
func (r *creatorRepository) EnsureExists(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO creators (user_id, tiktok_connected, created_at, updated_at)
	VALUES ($1, FALSE, NOW(), NOW())
	ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *creatorRepository) Upsert(ctx context.Context, creator *domain.Creator) error {
	if creator == nil || creator.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO creators (user_id, tiktok_connected, tiktok_username, created_at, updated_at)
	VALUES ($1, $2, $3, COALESCE($4, NOW()), NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET tiktok_connected = EXCLUDED.tiktok_connected,
		tiktok_username = EXCLUDED.tiktok_username,
		updated_at = NOW()
	RETURNING created_at, updated_at;
	`

	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		creator.UserID,
		creator.TikTokConnected,
		nullString(creator.TikTokUsername),
		nullTime(creator.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	creator.CreatedAt = createdAt
	creator.UpdatedAt = updatedAt
	return nil
}
