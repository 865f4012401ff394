package transport

type SignUpRequest struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
}

type SignInRequest struct {
	UserID string `json:"user_id"`
	TTL    int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}

type OrganizationRequest struct {
	OrganizationName string `json:"organization_name"`
}

type TikTokConnectRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type PaymentSetupRequest struct {
	StripeCustomerID string `json:"stripe_customer_id"`
	PaymentMethodID  string `json:"payment_method_id"`
}

type CampaignRequest struct {
	Title             string            `json:"title"`
	Brief             string            `json:"brief"`
	Status            string            `json:"status"`
	BudgetCents       int64             `json:"budget_cents"`
	RatePerMilleCents int64             `json:"rate_per_mille_cents"`
	Metadata          map[string]string `json:"metadata"`
}

type SubmissionRequest struct {
	CampaignID    string            `json:"campaign_id"`
	VideoURL      string            `json:"video_url"`
	TikTokVideoID string            `json:"tiktok_video_id"`
	Metadata      map[string]string `json:"metadata"`
}

type ReviewRequest struct {
	Approve bool `json:"approve"`
}

type ViewsUpdateRequest struct {
	Views int64 `json:"views"`
}
