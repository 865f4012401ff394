package payout

import (
	"context"

	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

// UseCase computes creator payout summaries from approved submissions.
// The actual transfer is executed by the payment processor out of band.
type UseCase struct {
	submissions repository.SubmissionRepository
	logger      *zap.Logger
}

func New(submissions repository.SubmissionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		submissions: submissions,
		logger:      logger,
	}
}

func (uc *UseCase) Summary(ctx context.Context, creatorID string) (*domain.PayoutSummary, error) {
	if creatorID == "" {
		return nil, domain.ErrInvalidPayload
	}
	return uc.submissions.EarningsSummary(ctx, creatorID)
}
