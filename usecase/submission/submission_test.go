package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

type stubSubmissions struct {
	submission *domain.Submission
	saveErr    error
	saved      []*domain.Submission
	events     []domain.ReviewEvent
}

func (s *stubSubmissions) Get(ctx context.Context, id string) (*domain.Submission, error) {
	if s.submission == nil {
		return nil, domain.ErrSubmissionNotFound
	}
	return s.submission, nil
}

func (s *stubSubmissions) List(ctx context.Context, filter repository.SubmissionFilter) ([]domain.Submission, error) {
	if s.submission == nil {
		return nil, nil
	}
	return []domain.Submission{*s.submission}, nil
}

func (s *stubSubmissions) Save(ctx context.Context, submission *domain.Submission) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, submission)
	return nil
}

func (s *stubSubmissions) AppendEvent(ctx context.Context, event domain.ReviewEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *stubSubmissions) EarningsSummary(ctx context.Context, creatorID string) (*domain.PayoutSummary, error) {
	return &domain.PayoutSummary{CreatorID: creatorID}, nil
}

type stubCampaigns struct {
	campaign *domain.Campaign
}

func (s *stubCampaigns) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	if s.campaign == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return s.campaign, nil
}

func (s *stubCampaigns) List(ctx context.Context, filter repository.CampaignFilter) ([]domain.Campaign, error) {
	return nil, nil
}

func (s *stubCampaigns) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	return campaign, nil
}

func (s *stubCampaigns) Update(ctx context.Context, campaign *domain.Campaign) error { return nil }

func (s *stubCampaigns) Delete(ctx context.Context, id string) error { return nil }

type stubBuffer struct {
	submissions []string
}

func (s *stubBuffer) BufferCreatorInit(ctx context.Context, userID string) error       { return nil }
func (s *stubBuffer) BufferProfileCompletion(ctx context.Context, userID string) error { return nil }
func (s *stubBuffer) BufferCampaign(ctx context.Context, operation string, campaign *domain.Campaign) error {
	return nil
}

func (s *stubBuffer) BufferSubmission(ctx context.Context, operation string, submission *domain.Submission) error {
	s.submissions = append(s.submissions, operation)
	return nil
}

func activeCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:                "cmp-1",
		BrandID:           "usr-2",
		Title:             "Summer Launch",
		Status:            "active",
		RatePerMilleCents: 250,
	}
}

func TestSubmitRejectsIncompletePayload(t *testing.T) {
	uc := New(&stubSubmissions{}, &stubCampaigns{campaign: activeCampaign()}, nil, nil)

	_, err := uc.Submit(context.Background(), &domain.Submission{CampaignID: "cmp-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestSubmitRejectsInactiveCampaign(t *testing.T) {
	campaign := activeCampaign()
	campaign.Status = "closed"
	uc := New(&stubSubmissions{}, &stubCampaigns{campaign: campaign}, nil, nil)

	_, err := uc.Submit(context.Background(), &domain.Submission{
		CampaignID: "cmp-1",
		CreatorID:  "usr-1",
		VideoURL:   "https://tiktok.com/v/1",
	})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestSubmitStartsPendingAndLogsIntakeEvent(t *testing.T) {
	submissions := &stubSubmissions{}
	uc := New(submissions, &stubCampaigns{campaign: activeCampaign()}, nil, nil)

	created, err := uc.Submit(context.Background(), &domain.Submission{
		CampaignID: "cmp-1",
		CreatorID:  "usr-1",
		VideoURL:   "https://tiktok.com/v/1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.SubmissionPending, created.Status)
	assert.Equal(t, 1, created.Version)
	require.Len(t, submissions.events, 1)
	assert.Equal(t, "submitted", submissions.events[0].Name)
}

func TestSubmitBuffersWhenStoreUnavailable(t *testing.T) {
	submissions := &stubSubmissions{saveErr: errors.New("connection refused")}
	buffer := &stubBuffer{}
	uc := New(submissions, &stubCampaigns{campaign: activeCampaign()}, buffer, nil)

	created, err := uc.Submit(context.Background(), &domain.Submission{
		CampaignID: "cmp-1",
		CreatorID:  "usr-1",
		VideoURL:   "https://tiktok.com/v/1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionPending, created.Status)
	assert.Len(t, buffer.submissions, 1)
}

func TestReviewApprovalComputesEarningsFromRate(t *testing.T) {
	submissions := &stubSubmissions{submission: &domain.Submission{
		ID:         "sub-1",
		CampaignID: "cmp-1",
		CreatorID:  "usr-1",
		Status:     domain.SubmissionPending,
		ViewCount:  48_000,
		Version:    1,
	}}
	uc := New(submissions, &stubCampaigns{campaign: activeCampaign()}, nil, nil)

	reviewed, err := uc.Review(context.Background(), "sub-1", "usr-2", true)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionApproved, reviewed.Status)
	// 48k views at 250 cents per mille
	assert.Equal(t, int64(12_000), reviewed.EarningsCents)
	assert.Equal(t, 2, reviewed.Version)
	require.Len(t, submissions.events, 1)
	assert.Equal(t, domain.SubmissionApproved, submissions.events[0].Name)
	assert.Equal(t, "usr-2", submissions.events[0].Metadata["reviewer_id"])
}

func TestReviewRejectionZeroesEarnings(t *testing.T) {
	submissions := &stubSubmissions{submission: &domain.Submission{
		ID:         "sub-1",
		CampaignID: "cmp-1",
		CreatorID:  "usr-1",
		Status:     domain.SubmissionPending,
		ViewCount:  48_000,
		Version:    1,
	}}
	uc := New(submissions, &stubCampaigns{campaign: activeCampaign()}, nil, nil)

	reviewed, err := uc.Review(context.Background(), "sub-1", "usr-2", false)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionRejected, reviewed.Status)
	assert.Zero(t, reviewed.EarningsCents)
}

func TestReviewRejectsAlreadyReviewedSubmission(t *testing.T) {
	submissions := &stubSubmissions{submission: &domain.Submission{
		ID:     "sub-1",
		Status: domain.SubmissionApproved,
	}}
	uc := New(submissions, &stubCampaigns{campaign: activeCampaign()}, nil, nil)

	_, err := uc.Review(context.Background(), "sub-1", "usr-2", true)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))
}

func TestUpdateViewsBumpsVersion(t *testing.T) {
	submissions := &stubSubmissions{submission: &domain.Submission{
		ID:      "sub-1",
		Status:  domain.SubmissionPending,
		Version: 1,
	}}
	uc := New(submissions, &stubCampaigns{}, nil, nil)

	updated, err := uc.UpdateViews(context.Background(), "sub-1", 1_500)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500), updated.ViewCount)
	assert.Equal(t, 2, updated.Version)
}
