package domain

import (
	"encoding/json"
	"time"
)

// Submission statuses.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission is a creator video submitted to a campaign for review.
// Review transitions are recorded as an append-only event stream.
type Submission struct {
	ID            string            `json:"id"`
	CampaignID    string            `json:"campaign_id"`
	CreatorID     string            `json:"creator_id"`
	VideoURL      string            `json:"video_url"`
	TikTokVideoID string            `json:"tiktok_video_id,omitempty"`
	Status        string            `json:"status"`
	ViewCount     int64             `json:"view_count"`
	EarningsCents int64             `json:"earnings_cents"`
	Version       int               `json:"version"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (s *Submission) Touch() {
	if s == nil {
		return
	}
	s.UpdatedAt = time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = s.UpdatedAt
	}
}

// ReviewEvent represents a review decision applied to a submission.
type ReviewEvent struct {
	ID           string            `json:"id"`
	SubmissionID string            `json:"submission_id"`
	Name         string            `json:"name"`
	Version      int               `json:"version"`
	Payload      json.RawMessage   `json:"payload"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
