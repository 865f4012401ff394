package domain

import "time"

// Brand holds brand-side payment state. A brand record may not exist yet for
// a brand whose signup never reached payment setup; absence and
// exists-but-unverified are distinct states, both treated as unverified.
type Brand struct {
	UserID           string    `json:"user_id"`
	StripeCustomerID string    `json:"stripe_customer_id,omitempty"`
	PaymentVerified  bool      `json:"payment_verified"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsVerified reports whether the brand has a verified payment method.
// A nil receiver (record absent) counts as unverified.
func (b *Brand) IsVerified() bool {
	return b != nil && b.PaymentVerified
}
