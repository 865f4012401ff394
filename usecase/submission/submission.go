package submission

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
	"github.com/clipdeals/backend/usecase"
)

type UseCase struct {
	submissions repository.SubmissionRepository
	campaigns   repository.CampaignRepository
	buffer      usecase.OperationBuffer
	logger      *zap.Logger
}

func New(submissions repository.SubmissionRepository, campaigns repository.CampaignRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		submissions: submissions,
		campaigns:   campaigns,
		buffer:      buffer,
		logger:      logger,
	}
}

func (uc *UseCase) ListSubmissions(ctx context.Context, filter repository.SubmissionFilter) ([]domain.Submission, error) {
	return uc.submissions.List(ctx, filter)
}

func (uc *UseCase) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	return uc.submissions.Get(ctx, id)
}

// Submit records a creator's video for a campaign and logs the intake event.
func (uc *UseCase) Submit(ctx context.Context, submission *domain.Submission) (*domain.Submission, error) {
	if submission == nil || submission.CampaignID == "" || submission.CreatorID == "" || submission.VideoURL == "" {
		return nil, domain.ErrInvalidPayload
	}

	campaign, err := uc.campaigns.GetByID(ctx, submission.CampaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsActive() {
		return nil, domain.NewError(domain.ErrCodeConflict, "campaign is not accepting submissions")
	}

	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	submission.Status = domain.SubmissionPending
	submission.Version = 1
	submission.Touch()

	if err := uc.submissions.Save(ctx, submission); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, submission) {
			return submission, nil
		}
		return nil, err
	}

	uc.appendEvent(ctx, submission, "submitted", nil)
	return submission, nil
}

// Review applies an approve or reject decision. Approval computes earnings
// from the campaign's per-mille rate and the submission's view count.
func (uc *UseCase) Review(ctx context.Context, id, reviewerID string, approve bool) (*domain.Submission, error) {
	submission, err := uc.submissions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if submission.Status != domain.SubmissionPending {
		return nil, domain.NewError(domain.ErrCodeConflict, "submission already reviewed")
	}

	if approve {
		campaign, err := uc.campaigns.GetByID(ctx, submission.CampaignID)
		if err != nil {
			return nil, err
		}
		submission.Status = domain.SubmissionApproved
		submission.EarningsCents = submission.ViewCount * campaign.RatePerMilleCents / 1000
	} else {
		submission.Status = domain.SubmissionRejected
		submission.EarningsCents = 0
	}
	submission.Version++
	submission.Touch()

	if err := uc.submissions.Save(ctx, submission); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, submission) {
			return submission, nil
		}
		return nil, err
	}

	uc.appendEvent(ctx, submission, submission.Status, map[string]string{"reviewer_id": reviewerID})
	return submission, nil
}

// UpdateViews refreshes the view count reported by the video platform.
func (uc *UseCase) UpdateViews(ctx context.Context, id string, views int64) (*domain.Submission, error) {
	submission, err := uc.submissions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	submission.ViewCount = views
	submission.Version++
	submission.Touch()

	if err := uc.submissions.Save(ctx, submission); err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, submission) {
			return submission, nil
		}
		return nil, err
	}
	return submission, nil
}

func (uc *UseCase) appendEvent(ctx context.Context, submission *domain.Submission, name string, metadata map[string]string) {
	payload, _ := json.Marshal(submission)
	event := domain.ReviewEvent{
		ID:           uuid.NewString(),
		SubmissionID: submission.ID,
		Name:         name,
		Version:      submission.Version,
		Payload:      payload,
		Metadata:     metadata,
		CreatedAt:    time.Now(),
	}
	if err := uc.submissions.AppendEvent(ctx, event); err != nil {
		uc.logger.Warn("failed to append review event",
			zap.String("submission_id", submission.ID),
			zap.String("event", name),
			zap.Error(err))
	}
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, submission *domain.Submission) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferSubmission(ctx, operation, submission); err != nil {
		uc.logger.Error("failed to buffer submission operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("submission operation buffered", zap.String("operation", operation))
	return true
}
