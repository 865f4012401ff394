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

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository instantiates a Postgres-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
		SELECT user_id, user_type, COALESCE(organization_name, ''), onboarding_completed, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	row := r.pool.QueryRow(ctx, query, userID)

	var profile domain.Profile
	if err := row.Scan(
		&profile.UserID,
		&profile.UserType,
		&profile.OrganizationName,
		&profile.OnboardingCompleted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO profiles (user_id, user_type, organization_name, onboarding_completed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), NOW())
	ON CONFLICT (user_id) DO UPDATE
	SET user_type = EXCLUDED.user_type,
		organization_name = EXCLUDED.organization_name,
		onboarding_completed = EXCLUDED.onboarding_completed,
		updated_at = NOW()
	RETURNING created_at, updated_at;
	`

	var createdAt, updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.UserType,
		nullString(profile.OrganizationName),
		profile.OnboardingCompleted,
		nullTime(profile.CreatedAt),
	).Scan(&createdAt, &updatedAt); err != nil {
		return err
	}

	profile.CreatedAt = createdAt
	profile.UpdatedAt = updatedAt
	return nil
}

func (r *profileRepository) MarkOnboardingCompleted(ctx context.Context, userID string) error {
	const query = `
	UPDATE profiles
	SET onboarding_completed = TRUE,
		updated_at = NOW()
	WHERE user_id = $1
	`
	tag, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
