package onboarding

import (
	"context"

	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

// UseCase implements the onboarding step actions the access gate routes
// users toward. Each action supplies one piece of missing account state.
type UseCase struct {
	profiles repository.ProfileRepository
	creators repository.CreatorRepository
	brands   repository.BrandRepository
	logger   *zap.Logger
}

func New(profiles repository.ProfileRepository, creators repository.CreatorRepository, brands repository.BrandRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		profiles: profiles,
		creators: creators,
		brands:   brands,
		logger:   logger,
	}
}

// AccountOverview bundles the account records an onboarding page or the
// dashboard renders from.
type AccountOverview struct {
	Profile *domain.Profile `json:"profile"`
	Creator *domain.Creator `json:"creator,omitempty"`
	Brand   *domain.Brand   `json:"brand,omitempty"`
}

// Overview loads the profile plus the role-side record. A missing creator or
// brand record is reported as nil, not an error.
func (uc *UseCase) Overview(ctx context.Context, userID string) (*AccountOverview, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &AccountOverview{Profile: profile}
	switch profile.UserType {
	case domain.UserTypeCreator:
		if creator, getErr := uc.creators.GetByUserID(ctx, userID); getErr == nil {
			overview.Creator = creator
		}
	case domain.UserTypeBrand:
		if brand, getErr := uc.brands.GetByUserID(ctx, userID); getErr == nil {
			overview.Brand = brand
		}
	}
	return overview, nil
}

// SaveCreatorProfile records the creator's organization name.
func (uc *UseCase) SaveCreatorProfile(ctx context.Context, userID, organizationName string) (*domain.Profile, error) {
	return uc.saveOrganization(ctx, userID, organizationName, domain.UserTypeCreator)
}

// SaveBrandProfile records the brand's organization name.
func (uc *UseCase) SaveBrandProfile(ctx context.Context, userID, organizationName string) (*domain.Profile, error) {
	return uc.saveOrganization(ctx, userID, organizationName, domain.UserTypeBrand)
}

func (uc *UseCase) saveOrganization(ctx context.Context, userID, organizationName string, want domain.UserType) (*domain.Profile, error) {
	if organizationName == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "organization name is required")
	}

	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.UserType != want {
		return nil, domain.NewError(domain.ErrCodeForbidden, "onboarding step does not match account type")
	}

	profile.OrganizationName = organizationName
	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ConnectTikTok marks the creator's TikTok account as linked. The OAuth
// round-trip with the video platform happens upstream; this records its result.
func (uc *UseCase) ConnectTikTok(ctx context.Context, userID, username string) (*domain.Creator, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.UserType != domain.UserTypeCreator {
		return nil, domain.NewError(domain.ErrCodeForbidden, "only creators connect tiktok")
	}

	creator := &domain.Creator{
		UserID:          userID,
		TikTokConnected: true,
		TikTokUsername:  username,
	}
	if existing, getErr := uc.creators.GetByUserID(ctx, userID); getErr == nil {
		creator.CreatedAt = existing.CreatedAt
	}

	if err := uc.creators.Upsert(ctx, creator); err != nil {
		return nil, err
	}

	uc.logger.Info("tiktok connected", zap.String("user_id", userID))
	return creator, nil
}

// VerifyBrandPayment records the payment processor's customer reference and
// marks the brand's payment method as verified. The record is created here
// if the signup flow never reached payment setup before.
func (uc *UseCase) VerifyBrandPayment(ctx context.Context, userID, stripeCustomerID string) (*domain.Brand, error) {
	if stripeCustomerID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "stripe customer id is required")
	}

	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.UserType != domain.UserTypeBrand {
		return nil, domain.NewError(domain.ErrCodeForbidden, "only brands verify payment")
	}

	brand := &domain.Brand{
		UserID:           userID,
		StripeCustomerID: stripeCustomerID,
		PaymentVerified:  true,
	}
	if existing, getErr := uc.brands.GetByUserID(ctx, userID); getErr == nil {
		brand.CreatedAt = existing.CreatedAt
	}

	if err := uc.brands.Upsert(ctx, brand); err != nil {
		return nil, err
	}

	uc.logger.Info("brand payment verified", zap.String("user_id", userID))
	return brand, nil
}
