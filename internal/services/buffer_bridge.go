package services

import (
	"context"
	"encoding/json"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/internal/access"
	"github.com/clipdeals/backend/internal/infrastructure/buffer"
	"github.com/clipdeals/backend/usecase"
)

// BufferBridge adapts the buffer processor to the write-buffer ports the
// access gate and the use cases consume.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferCreatorInit(ctx context.Context, userID string) error {
	if b.processor == nil || userID == "" {
		return domain.ErrInvalidPayload
	}
	item := buffer.Item{
		UserID:    userID,
		Entity:    buffer.EntityCreatorInit,
		Operation: buffer.OperationCreate,
		Priority:  2,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferProfileCompletion(ctx context.Context, userID string) error {
	if b.processor == nil || userID == "" {
		return domain.ErrInvalidPayload
	}
	item := buffer.Item{
		UserID:    userID,
		Entity:    buffer.EntityProfileFlag,
		Operation: buffer.OperationUpdate,
		Priority:  2,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferCampaign(ctx context.Context, operation string, campaign *domain.Campaign) error {
	if b.processor == nil || campaign == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(campaign)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        campaign.ID,
		UserID:    campaign.BrandID,
		Entity:    buffer.EntityCampaign,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferSubmission(ctx context.Context, operation string, submission *domain.Submission) error {
	if b.processor == nil || submission == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(submission)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        submission.ID,
		UserID:    submission.CreatorID,
		Entity:    buffer.EntitySubmission,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

var (
	_ usecase.OperationBuffer = (*BufferBridge)(nil)
	_ access.WriteBuffer      = (*BufferBridge)(nil)
)
