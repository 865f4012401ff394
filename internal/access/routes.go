package access

import "strings"

// Canonical paths the gate redirects to. Onboarding steps double as the
// pages a user must visit to supply missing account state.
const (
	PathSignIn         = "/signin"
	PathSignUp         = "/signup"
	PathDashboard      = "/dashboard"
	PathCreatorTikTok  = "/onboarding/creator/tiktok"
	PathCreatorProfile = "/onboarding/creator/profile"
	PathBrandProfile   = "/onboarding/brand/profile"
	PathBrandPayments  = "/onboarding/brand/payments"
)

// protectedPrefixes is the fixed set of path prefixes subject to the gate.
// Anything else bypasses access control entirely (marketing pages, the
// public campaign view, static assets).
var protectedPrefixes = []string{
	PathDashboard,
	"/onboarding",
	"/payouts",
	"/campaigns/new",
	"/api/payouts",
	"/api/v1/campaigns",
	"/api/v1/submissions",
	PathSignIn,
	PathSignUp,
}

// paymentRequiredPrefixes gate brand usage on a verified payment method.
// Matching covers the prefix itself and its sub-paths, so /campaigns/new
// matches but /campaigns alone does not.
var paymentRequiredPrefixes = []string{
	"/payouts",
	"/campaigns/new",
	"/api/payouts",
	"/api/v1/campaigns",
}

// IsProtected reports whether the path is subject to access control.
func IsProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if matchesPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequiresPayment reports whether the path is gated on brand payment verification.
func RequiresPayment(path string) bool {
	for _, prefix := range paymentRequiredPrefixes {
		if matchesPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// IsAuthPage reports whether the path is the sign-in or sign-up page, which
// are protected only for the signed-in-bypass rule.
func IsAuthPage(path string) bool {
	return path == PathSignIn || path == PathSignUp
}

func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
