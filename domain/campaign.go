package domain

import "time"

// Campaign represents a brand-owned sponsorship campaign creators submit videos to.
type Campaign struct {
	ID                string            `json:"id"`
	BrandID           string            `json:"brand_id"`
	Title             string            `json:"title"`
	Brief             string            `json:"brief,omitempty"`
	Status            string            `json:"status"`
	BudgetCents       int64             `json:"budget_cents"`
	RatePerMilleCents int64             `json:"rate_per_mille_cents"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (c *Campaign) IsActive() bool {
	return c != nil && c.Status == "active"
}
