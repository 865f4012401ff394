package domain

import "time"

// PayoutSummary aggregates a creator's approved submission earnings.
type PayoutSummary struct {
	CreatorID           string    `json:"creator_id"`
	ApprovedSubmissions int       `json:"approved_submissions"`
	TotalViews          int64     `json:"total_views"`
	TotalEarningsCents  int64     `json:"total_earnings_cents"`
	ComputedAt          time.Time `json:"computed_at"`
}
