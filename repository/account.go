package repository

import (
	"context"

	"github.com/clipdeals/backend/domain"
)

// ProfileRepository is the account store contract for per-user profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	MarkOnboardingCompleted(ctx context.Context, userID string) error
}

// CreatorRepository manages creator-side onboarding records.
type CreatorRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Creator, error)
	// EnsureExists creates the record with tiktok_connected=false if absent.
	// It must be idempotent: concurrent calls for the same user may not
	// duplicate the row or error.
	EnsureExists(ctx context.Context, userID string) error
	Upsert(ctx context.Context, creator *domain.Creator) error
}

// BrandRepository manages brand-side payment records. A missing record is a
// valid state (signup never reached payment setup) and is reported as
// domain.ErrBrandNotFound.
type BrandRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Brand, error)
	Upsert(ctx context.Context, brand *domain.Brand) error
}
