package onboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdeals/backend/domain"
)

type stubProfiles struct {
	profile  *domain.Profile
	upserted *domain.Profile
}

func (s *stubProfiles) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfiles) Upsert(ctx context.Context, profile *domain.Profile) error {
	s.upserted = profile
	return nil
}

func (s *stubProfiles) MarkOnboardingCompleted(ctx context.Context, userID string) error {
	return nil
}

type stubCreators struct {
	creator  *domain.Creator
	upserted *domain.Creator
}

func (s *stubCreators) GetByUserID(ctx context.Context, userID string) (*domain.Creator, error) {
	if s.creator == nil {
		return nil, domain.ErrCreatorNotFound
	}
	return s.creator, nil
}

func (s *stubCreators) EnsureExists(ctx context.Context, userID string) error { return nil }

func (s *stubCreators) Upsert(ctx context.Context, creator *domain.Creator) error {
	s.upserted = creator
	return nil
}

type stubBrands struct {
	brand    *domain.Brand
	upserted *domain.Brand
}

func (s *stubBrands) GetByUserID(ctx context.Context, userID string) (*domain.Brand, error) {
	if s.brand == nil {
		return nil, domain.ErrBrandNotFound
	}
	return s.brand, nil
}

func (s *stubBrands) Upsert(ctx context.Context, brand *domain.Brand) error {
	s.upserted = brand
	return nil
}

func creatorProfile(userID string) *domain.Profile {
	return &domain.Profile{UserID: userID, UserType: domain.UserTypeCreator}
}

func brandProfile(userID string) *domain.Profile {
	return &domain.Profile{UserID: userID, UserType: domain.UserTypeBrand}
}

func TestSaveCreatorProfileRequiresOrganizationName(t *testing.T) {
	uc := New(&stubProfiles{profile: creatorProfile("usr-1")}, &stubCreators{}, &stubBrands{}, nil)

	_, err := uc.SaveCreatorProfile(context.Background(), "usr-1", "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSaveCreatorProfilePersistsOrganization(t *testing.T) {
	profiles := &stubProfiles{profile: creatorProfile("usr-1")}
	uc := New(profiles, &stubCreators{}, &stubBrands{}, nil)

	profile, err := uc.SaveCreatorProfile(context.Background(), "usr-1", "Studio North")
	require.NoError(t, err)
	assert.Equal(t, "Studio North", profile.OrganizationName)
	require.NotNil(t, profiles.upserted)
	assert.Equal(t, "Studio North", profiles.upserted.OrganizationName)
}

func TestSaveBrandProfileRejectsCreatorAccount(t *testing.T) {
	uc := New(&stubProfiles{profile: creatorProfile("usr-1")}, &stubCreators{}, &stubBrands{}, nil)

	_, err := uc.SaveBrandProfile(context.Background(), "usr-1", "Acme")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
}

func TestConnectTikTokMarksCreatorConnected(t *testing.T) {
	creators := &stubCreators{creator: &domain.Creator{UserID: "usr-1"}}
	uc := New(&stubProfiles{profile: creatorProfile("usr-1")}, creators, &stubBrands{}, nil)

	creator, err := uc.ConnectTikTok(context.Background(), "usr-1", "@studionorth")
	require.NoError(t, err)
	assert.True(t, creator.TikTokConnected)
	assert.Equal(t, "@studionorth", creator.TikTokUsername)
	require.NotNil(t, creators.upserted)
	assert.True(t, creators.upserted.TikTokConnected)
}

func TestConnectTikTokRejectsBrandAccount(t *testing.T) {
	uc := New(&stubProfiles{profile: brandProfile("usr-2")}, &stubCreators{}, &stubBrands{}, nil)

	_, err := uc.ConnectTikTok(context.Background(), "usr-2", "@acme")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
}

func TestVerifyBrandPaymentRequiresCustomerID(t *testing.T) {
	uc := New(&stubProfiles{profile: brandProfile("usr-2")}, &stubCreators{}, &stubBrands{}, nil)

	_, err := uc.VerifyBrandPayment(context.Background(), "usr-2", "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestVerifyBrandPaymentCreatesRecordOnFirstVerification(t *testing.T) {
	brands := &stubBrands{}
	uc := New(&stubProfiles{profile: brandProfile("usr-2")}, &stubCreators{}, brands, nil)

	brand, err := uc.VerifyBrandPayment(context.Background(), "usr-2", "cus_123")
	require.NoError(t, err)
	assert.True(t, brand.PaymentVerified)
	assert.Equal(t, "cus_123", brand.StripeCustomerID)
	require.NotNil(t, brands.upserted)
	assert.True(t, brands.upserted.PaymentVerified)
}

func TestOverviewReportsMissingBrandRecordAsNil(t *testing.T) {
	uc := New(&stubProfiles{profile: brandProfile("usr-2")}, &stubCreators{}, &stubBrands{}, nil)

	overview, err := uc.Overview(context.Background(), "usr-2")
	require.NoError(t, err)
	assert.Nil(t, overview.Brand)
	assert.Nil(t, overview.Creator)
	require.NotNil(t, overview.Profile)
}

func TestOverviewIncludesCreatorRecord(t *testing.T) {
	creators := &stubCreators{creator: &domain.Creator{UserID: "usr-1", TikTokConnected: true}}
	uc := New(&stubProfiles{profile: creatorProfile("usr-1")}, creators, &stubBrands{}, nil)

	overview, err := uc.Overview(context.Background(), "usr-1")
	require.NoError(t, err)
	require.NotNil(t, overview.Creator)
	assert.True(t, overview.Creator.TikTokConnected)
}
