package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdeals/backend/domain"
)

type stubProfiles struct {
	profile *domain.Profile
	getErr  error
	markErr error
	marked  []string
}

func (s *stubProfiles) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfiles) Upsert(ctx context.Context, profile *domain.Profile) error { return nil }

func (s *stubProfiles) MarkOnboardingCompleted(ctx context.Context, userID string) error {
	s.marked = append(s.marked, userID)
	if s.markErr != nil {
		return s.markErr
	}
	if s.profile != nil {
		s.profile.OnboardingCompleted = true
	}
	return nil
}

type stubCreators struct {
	creator   *domain.Creator
	getErr    error
	ensureErr error
	ensured   []string
}

func (s *stubCreators) GetByUserID(ctx context.Context, userID string) (*domain.Creator, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.creator == nil {
		return nil, domain.ErrCreatorNotFound
	}
	return s.creator, nil
}

func (s *stubCreators) EnsureExists(ctx context.Context, userID string) error {
	s.ensured = append(s.ensured, userID)
	if s.ensureErr != nil {
		return s.ensureErr
	}
	if s.creator == nil {
		s.creator = &domain.Creator{UserID: userID}
	}
	return nil
}

func (s *stubCreators) Upsert(ctx context.Context, creator *domain.Creator) error { return nil }

type stubBrands struct {
	brand  *domain.Brand
	getErr error
}

func (s *stubBrands) GetByUserID(ctx context.Context, userID string) (*domain.Brand, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.brand == nil {
		return nil, domain.ErrBrandNotFound
	}
	return s.brand, nil
}

func (s *stubBrands) Upsert(ctx context.Context, brand *domain.Brand) error { return nil }

type stubWriteBuffer struct {
	creatorInits []string
	completions  []string
}

func (s *stubWriteBuffer) BufferCreatorInit(ctx context.Context, userID string) error {
	s.creatorInits = append(s.creatorInits, userID)
	return nil
}

func (s *stubWriteBuffer) BufferProfileCompletion(ctx context.Context, userID string) error {
	s.completions = append(s.completions, userID)
	return nil
}

func newTestGate(profiles *stubProfiles, creators *stubCreators, brands *stubBrands, writes WriteBuffer) *Gate {
	return NewGate(profiles, creators, brands, writes, nil)
}

func TestGateNoProfileRedirectsToSignIn(t *testing.T) {
	gate := newTestGate(&stubProfiles{}, &stubCreators{}, &stubBrands{}, nil)
	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.Equal(t, PathSignIn, outcome.Location())
}

func TestGateProfileReadFailureDegradesToSignIn(t *testing.T) {
	profiles := &stubProfiles{getErr: errors.New("connection refused")}
	gate := newTestGate(profiles, &stubCreators{}, &stubBrands{}, nil)
	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.Equal(t, PathSignIn, outcome.Location())
}

func TestGateLazyCreatorCreation(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	creators := &stubCreators{}
	gate := newTestGate(profiles, creators, &stubBrands{}, nil)

	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)

	assert.Equal(t, PathCreatorTikTok, outcome.Location())
	require.Len(t, creators.ensured, 1)
	assert.Equal(t, "usr-1", creators.ensured[0])
	require.NotNil(t, creators.creator)
	assert.False(t, creators.creator.TikTokConnected)

	// A second evaluation finds the record and does not create again.
	outcome = gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.Equal(t, PathCreatorTikTok, outcome.Location())
	assert.Len(t, creators.ensured, 1)
}

func TestGateCreatorInitFailureIsBufferedNotBlocking(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	creators := &stubCreators{ensureErr: errors.New("write timeout")}
	writes := &stubWriteBuffer{}
	gate := newTestGate(profiles, creators, &stubBrands{}, writes)

	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)

	assert.Equal(t, PathCreatorTikTok, outcome.Location())
	assert.Equal(t, []string{"usr-1"}, writes.creatorInits)
}

func TestGateCreatorReadFailureFallsBackToEarliestStep(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	creators := &stubCreators{getErr: errors.New("connection reset")}
	gate := newTestGate(profiles, creators, &stubBrands{}, nil)

	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.Equal(t, PathCreatorTikTok, outcome.Location())
}

func TestGateCreatorCompletionFlagFlipIsIdempotent(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{
		UserID:           "usr-1",
		UserType:         domain.UserTypeCreator,
		OrganizationName: "Studio North",
	}}
	creators := &stubCreators{creator: &domain.Creator{UserID: "usr-1", TikTokConnected: true}}
	gate := newTestGate(profiles, creators, &stubBrands{}, nil)

	first := gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	second := gate.Evaluate(context.Background(), "usr-1", PathDashboard)

	assert.True(t, first.Allowed())
	assert.True(t, second.Allowed())
	assert.True(t, profiles.profile.OnboardingCompleted)
	assert.Len(t, profiles.marked, 1, "flag must flip exactly once")
}

func TestGateCompletionWriteFailureRepeatsUntilSuccess(t *testing.T) {
	profiles := &stubProfiles{
		profile: &domain.Profile{
			UserID:           "usr-1",
			UserType:         domain.UserTypeCreator,
			OrganizationName: "Studio North",
		},
		markErr: errors.New("write timeout"),
	}
	creators := &stubCreators{creator: &domain.Creator{UserID: "usr-1", TikTokConnected: true}}
	writes := &stubWriteBuffer{}
	gate := newTestGate(profiles, creators, &stubBrands{}, writes)

	outcome := gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.True(t, outcome.Allowed(), "failed write must not change the decision")
	assert.Equal(t, []string{"usr-1"}, writes.completions)

	// Store recovers; the same evaluation persists the flag this time.
	profiles.markErr = nil
	outcome = gate.Evaluate(context.Background(), "usr-1", PathDashboard)
	assert.True(t, outcome.Allowed())
	assert.True(t, profiles.profile.OnboardingCompleted)
}

func TestGateBrandAbsentRecordGatesPayment(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{
		UserID:              "usr-2",
		UserType:            domain.UserTypeBrand,
		OrganizationName:    "Acme",
		OnboardingCompleted: true,
	}}
	gate := newTestGate(profiles, &stubCreators{}, &stubBrands{}, nil)

	outcome := gate.Evaluate(context.Background(), "usr-2", "/payouts")
	assert.Equal(t, PathBrandPayments, outcome.Location())

	outcome = gate.Evaluate(context.Background(), "usr-2", PathDashboard)
	assert.True(t, outcome.Allowed())
}

func TestGateBrandReadFailureTreatedAsUnverified(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{
		UserID:           "usr-2",
		UserType:         domain.UserTypeBrand,
		OrganizationName: "Acme",
	}}
	brands := &stubBrands{getErr: errors.New("connection refused")}
	gate := newTestGate(profiles, &stubCreators{}, brands, nil)

	outcome := gate.Evaluate(context.Background(), "usr-2", "/campaigns/new")
	assert.Equal(t, PathBrandPayments, outcome.Location())
}

func TestGateBrandVerifiedPassesPaymentRoutes(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{
		UserID:           "usr-2",
		UserType:         domain.UserTypeBrand,
		OrganizationName: "Acme",
	}}
	brands := &stubBrands{brand: &domain.Brand{UserID: "usr-2", StripeCustomerID: "cus_123", PaymentVerified: true}}
	gate := newTestGate(profiles, &stubCreators{}, brands, nil)

	outcome := gate.Evaluate(context.Background(), "usr-2", "/campaigns/new")
	assert.True(t, outcome.Allowed())
}
