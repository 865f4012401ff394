package repository

import (
	"context"

	"github.com/clipdeals/backend/domain"
)

type CampaignFilter struct {
	BrandID string
	Status  string
	Limit   int
	Offset  int
}

type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	Delete(ctx context.Context, id string) error
}
