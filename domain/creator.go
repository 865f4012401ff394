package domain

import "time"

// Creator holds creator-side onboarding state. It is created lazily with
// TikTokConnected=false the first time a creator profile reaches the gate.
type Creator struct {
	UserID          string    `json:"user_id"`
	TikTokConnected bool      `json:"tiktok_connected"`
	TikTokUsername  string    `json:"tiktok_username,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
