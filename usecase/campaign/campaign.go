package campaign

import (
	"context"

	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
	"github.com/clipdeals/backend/usecase"
)

type UseCase struct {
	campaigns repository.CampaignRepository
	buffer    usecase.OperationBuffer
	logger    *zap.Logger
}

func New(campaigns repository.CampaignRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		campaigns: campaigns,
		buffer:    buffer,
		logger:    logger,
	}
}

func (uc *UseCase) ListCampaigns(ctx context.Context, filter repository.CampaignFilter) ([]domain.Campaign, error) {
	return uc.campaigns.List(ctx, filter)
}

func (uc *UseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return uc.campaigns.GetByID(ctx, id)
}

func (uc *UseCase) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign == nil || campaign.BrandID == "" || campaign.Title == "" {
		return nil, domain.ErrInvalidPayload
	}
	if campaign.Status == "" {
		campaign.Status = "draft"
	}

	created, err := uc.campaigns.Create(ctx, campaign)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, campaign) {
			return campaign, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if campaign == nil || campaign.ID == "" {
		return nil, domain.ErrInvalidPayload
	}

	if err := uc.campaigns.Update(ctx, campaign); err != nil {
		if err == domain.ErrCampaignNotFound {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, campaign) {
			return campaign, nil
		}
		return nil, err
	}
	return campaign, nil
}

func (uc *UseCase) DeleteCampaign(ctx context.Context, id string) error {
	if err := uc.campaigns.Delete(ctx, id); err != nil {
		if err == domain.ErrCampaignNotFound {
			return err
		}
		campaign := &domain.Campaign{ID: id}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, campaign) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, campaign *domain.Campaign) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferCampaign(ctx, operation, campaign); err != nil {
		uc.logger.Error("failed to buffer campaign operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("campaign operation buffered", zap.String("operation", operation))
	return true
}
