package domain

import "time"

// UserType distinguishes the two sides of the marketplace.
type UserType string

const (
	UserTypeCreator UserType = "creator"
	UserTypeBrand   UserType = "brand"
)

// Profile is the per-user account record created at signup. Onboarding steps
// mutate it; the access gate reads it on every protected request.
type Profile struct {
	UserID              string    `json:"user_id"`
	UserType            UserType  `json:"user_type"`
	OrganizationName    string    `json:"organization_name,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// HasOrganization reports whether the profile step supplied an organization name.
func (p *Profile) HasOrganization() bool {
	return p != nil && p.OrganizationName != ""
}
