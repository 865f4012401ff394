package access

import "github.com/clipdeals/backend/domain"

// Outcome is the routing decision for one request: pass through or redirect.
type Outcome struct {
	redirect string
}

// Allow lets the request through.
func Allow() Outcome { return Outcome{} }

// Redirect sends the requester to the given location.
func Redirect(location string) Outcome { return Outcome{redirect: location} }

func (o Outcome) Allowed() bool { return o.redirect == "" }

// Location returns the redirect target, empty when the request is allowed.
func (o Outcome) Location() string { return o.redirect }

// AccountState is the mutable account data a decision is evaluated against.
// The caller loads it; Decide never touches storage.
type AccountState struct {
	Profile *domain.Profile
	Creator *domain.Creator
	Brand   *domain.Brand
}

// Decision couples the routing outcome with the side effect the caller must
// apply. MarkOnboardingComplete is set exactly when a fully onboarded
// creator is allowed through for the first time.
type Decision struct {
	Outcome                Outcome
	MarkOnboardingComplete bool
}

// Decide evaluates the onboarding state machine for one request path.
// Rules are checked in order; the first match wins. A nil profile means
// failed or incomplete signup and always routes back to sign-in.
func Decide(state AccountState, path string) Decision {
	if state.Profile == nil {
		return Decision{Outcome: Redirect(PathSignIn)}
	}

	switch state.Profile.UserType {
	case domain.UserTypeCreator:
		return decideCreator(state, path)
	case domain.UserTypeBrand:
		return decideBrand(state, path)
	default:
		// Unrecognized account type fails safe.
		return Decision{Outcome: Redirect(PathSignIn)}
	}
}

func decideCreator(state AccountState, path string) Decision {
	if state.Creator == nil || !state.Creator.TikTokConnected {
		// Allowing the profile-setup page here prevents a redirect loop
		// while the user is actively completing that step.
		if path == PathCreatorProfile {
			return Decision{Outcome: Allow()}
		}
		return Decision{Outcome: Redirect(PathCreatorTikTok)}
	}

	if !state.Profile.HasOrganization() {
		return Decision{Outcome: Redirect(PathCreatorProfile)}
	}

	if !state.Profile.OnboardingCompleted {
		return Decision{Outcome: Allow(), MarkOnboardingComplete: true}
	}

	return Decision{Outcome: Allow()}
}

func decideBrand(state AccountState, path string) Decision {
	if !state.Profile.HasOrganization() {
		return Decision{Outcome: Redirect(PathBrandProfile)}
	}

	// Payment is enforced per-route, not globally: a brand may use every
	// non-payment route, including the dashboard, without ever setting up
	// payment. An absent brand record counts as unverified.
	if RequiresPayment(path) && !state.Brand.IsVerified() {
		return Decision{Outcome: Redirect(PathBrandPayments)}
	}

	return Decision{Outcome: Allow()}
}
