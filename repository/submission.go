package repository

import (
	"context"

	"github.com/clipdeals/backend/domain"
)

type SubmissionFilter struct {
	CampaignID string
	CreatorID  string
	Status     string
	Limit      int
	Offset     int
}

type SubmissionRepository interface {
	Get(ctx context.Context, id string) (*domain.Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, error)
	Save(ctx context.Context, submission *domain.Submission) error
	AppendEvent(ctx context.Context, event domain.ReviewEvent) error
	EarningsSummary(ctx context.Context, creatorID string) (*domain.PayoutSummary, error)
}
