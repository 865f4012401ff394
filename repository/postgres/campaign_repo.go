package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

type campaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a Postgres-backed implementation of CampaignRepository.
func NewCampaignRepository(pool *pgxpool.Pool) repository.CampaignRepository {
	return &campaignRepository{pool: pool}
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	const query = `
	SELECT id, brand_id, title, brief, status, budget_cents, rate_per_mille_cents, metadata, created_at, updated_at
	FROM campaigns
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanCampaign(row)
}

func (r *campaignRepository) List(ctx context.Context, filter repository.CampaignFilter) ([]domain.Campaign, error) {
	const query = `
	SELECT id, brand_id, title, brief, status, budget_cents, rate_per_mille_cents, metadata, created_at, updated_at
	FROM campaigns
	WHERE ($1 = '' OR brand_id = $1)
	  AND ($2 = '' OR status = $2)
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.BrandID, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign == nil {
		return nil, domain.ErrInvalidPayload
	}
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO campaigns (id, brand_id, title, brief, status, budget_cents, rate_per_mille_cents, metadata)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`

	metadata := marshalMap(campaign.Metadata)

	if err := r.pool.QueryRow(ctx, query,
		campaign.ID,
		campaign.BrandID,
		campaign.Title,
		campaign.Brief,
		campaign.Status,
		campaign.BudgetCents,
		campaign.RatePerMilleCents,
		metadata,
	).Scan(&campaign.CreatedAt, &campaign.UpdatedAt); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	if campaign == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE campaigns
	SET title = $2,
		brief = $3,
		status = $4,
		budget_cents = $5,
		rate_per_mille_cents = $6,
		metadata = $7,
		updated_at = NOW()
	WHERE id = $1
	RETURNING updated_at
	`

	metadata := marshalMap(campaign.Metadata)

	if err := r.pool.QueryRow(ctx, query,
		campaign.ID,
		campaign.Title,
		campaign.Brief,
		campaign.Status,
		campaign.BudgetCents,
		campaign.RatePerMilleCents,
		metadata,
	).Scan(&campaign.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCampaignNotFound
		}
		return err
	}

	return nil
}

func (r *campaignRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM campaigns WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Campaign, error) {
	var campaign domain.Campaign
	var metadata []byte

	if err := row.Scan(
		&campaign.ID,
		&campaign.BrandID,
		&campaign.Title,
		&campaign.Brief,
		&campaign.Status,
		&campaign.BudgetCents,
		&campaign.RatePerMilleCents,
		&metadata,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCampaignNotFound
		}
		return nil, err
	}

	if len(metadata) > 0 {
		_ = json.Unmarshal(metadata, &campaign.Metadata)
	}

	return &campaign, nil
}
