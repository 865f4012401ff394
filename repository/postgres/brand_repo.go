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

type brandRepository struct {
	pool *pgxpool.Pool
}

// NewBrandRepository instantiates a Postgres-backed brand repository.
func NewBrandRepository(pool *pgxpool.Pool) repository.BrandRepository {
	return &brandRepository{pool: pool}
}

func (r *brandRepository) GetByUserID(ctx context.Context, userID string) (*domain.Brand, error) {
	const query = `
		SELECT user_id, COALESCE(stripe_customer_id, ''), payment_verified, created_at, updated_at
		FROM brands
		WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var brand domain.Brand
	if err := row.Scan(
		&brand.UserID,
		&brand.StripeCustomerID,
		&brand.PaymentVerified,
		&brand.CreatedAt,
		&brand.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}

	return &brand, nil
}

func (r *brandRepository) Upsert(ctx context.Context, brand *domain.Brand) error {
	if brand == nil || brand.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO brands (user_id, stripe_customer_id, payment_verified, created_at, updated_at)
	VALUES ($1, $2, $3, COALESCE($4, NOW()), NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET stripe_customer_id = EXCLUDED.stripe_customer_id,
		payment_verified = EXCLUDED.payment_verified,
		updated_at = NOW()
	RETURNING created_at, updated_at;
	`

	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		brand.UserID,
		nullString(brand.StripeCustomerID),
		brand.PaymentVerified,
		nullTime(brand.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	brand.CreatedAt = createdAt
	brand.UpdatedAt = updatedAt
	return nil
}
