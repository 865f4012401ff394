package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

type submissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a Postgres-backed SubmissionRepository implementation.
func NewSubmissionRepository(pool *pgxpool.Pool) repository.SubmissionRepository {
	return &submissionRepository{pool: pool}
}

func (r *submissionRepository) Get(ctx context.Context, id string) (*domain.Submission, error) {
	const query = `
	SELECT id, campaign_id, creator_id, video_url, COALESCE(tiktok_video_id, ''), status,
	       view_count, earnings_cents, version, metadata, created_at, updated_at
	FROM submissions
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanSubmission(row)
}

func (r *submissionRepository) List(ctx context.Context, filter repository.SubmissionFilter) ([]domain.Submission, error) {
	const query = `
	SELECT id, campaign_id, creator_id, video_url, COALESCE(tiktok_video_id, ''), status,
	       view_count, earnings_cents, version, metadata, created_at, updated_at
	FROM submissions
	WHERE ($1 = '' OR campaign_id = $1)
	  AND ($2 = '' OR creator_id = $2)
	  AND ($3 = '' OR status = $3)
	ORDER BY updated_at DESC
	LIMIT $4 OFFSET $5
	`
	rows, err := r.pool.Query(ctx, query, filter.CampaignID, filter.CreatorID, filter.Status, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.Submission
	for rows.Next() {
		entity, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, *entity)
	}
	return submissions, rows.Err()
}

func (r *submissionRepository) Save(ctx context.Context, submission *domain.Submission) error {
	if submission == nil || submission.ID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO submissions (id, campaign_id, creator_id, video_url, tiktok_video_id, status,
	                         view_count, earnings_cents, version, metadata, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, COALESCE($11, NOW()), NOW())
	ON CONFLICT (id) DO UPDATE
	SET video_url = EXCLUDED.video_url,
		tiktok_video_id = EXCLUDED.tiktok_video_id,
		status = EXCLUDED.status,
		view_count = EXCLUDED.view_count,
		earnings_cents = EXCLUDED.earnings_cents,
		version = EXCLUDED.version,
		metadata = EXCLUDED.metadata,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`

	metadata := marshalMap(submission.Metadata)

	if err := r.pool.QueryRow(ctx, query,
		submission.ID,
		submission.CampaignID,
		submission.CreatorID,
		submission.VideoURL,
		nullString(submission.TikTokVideoID),
		submission.Status,
		submission.ViewCount,
		submission.EarningsCents,
		submission.Version,
		metadata,
		nullTime(submission.CreatedAt),
	).Scan(&submission.CreatedAt, &submission.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *submissionRepository) AppendEvent(ctx context.Context, event domain.ReviewEvent) error {
	const query = `
	INSERT INTO submission_events (id, submission_id, name, version, payload, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, NOW()))
	`

	metadata := marshalMap(event.Metadata)

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.SubmissionID,
		event.Name,
		event.Version,
		[]byte(event.Payload),
		metadata,
		nullTime(event.CreatedAt),
	)

	return err
}

func (r *submissionRepository) EarningsSummary(ctx context.Context, creatorID string) (*domain.PayoutSummary, error) {
	const query = `
	SELECT COUNT(*), COALESCE(SUM(view_count), 0), COALESCE(SUM(earnings_cents), 0)
	FROM submissions
	WHERE creator_id = $1 AND status = 'approved'
	`
	row := r.pool.QueryRow(ctx, query, creatorID)

	summary := domain.PayoutSummary{CreatorID: creatorID, ComputedAt: time.Now().UTC()}
	if err := row.Scan(&summary.ApprovedSubmissions, &summary.TotalViews, &summary.TotalEarningsCents); err != nil {
		return nil, err
	}
	return &summary, nil
}

func scanSubmission(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Submission, error) {
	var entity domain.Submission
	var metadata []byte

	if err := row.Scan(
		&entity.ID,
		&entity.CampaignID,
		&entity.CreatorID,
		&entity.VideoURL,
		&entity.TikTokVideoID,
		&entity.Status,
		&entity.ViewCount,
		&entity.EarningsCents,
		&entity.Version,
		&metadata,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, err
	}

	if len(metadata) > 0 {
		_ = json.Unmarshal(metadata, &entity.Metadata)
	}

	return &entity, nil
}
