package access

import (
	"context"

	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

// WriteBuffer captures gate side-effect writes that failed so a background
// processor can retry them. The routing decision is never blocked on it.
type WriteBuffer interface {
	BufferCreatorInit(ctx context.Context, userID string) error
	BufferProfileCompletion(ctx context.Context, userID string) error
}

// Gate is the thin I/O wrapper around Decide: it loads the requester's
// account state, evaluates the decision, and applies side effects. It never
// returns an error; any store failure degrades to the most conservative
// redirect computed from the data that did load.
type Gate struct {
	profiles repository.ProfileRepository
	creators repository.CreatorRepository
	brands   repository.BrandRepository
	writes   WriteBuffer
	logger   *zap.Logger
}

// NewGate wires the gate. writes may be nil; failed side-effect writes are
// then only logged and repeat on the next evaluation.
func NewGate(
	profiles repository.ProfileRepository,
	creators repository.CreatorRepository,
	brands repository.BrandRepository,
	writes WriteBuffer,
	logger *zap.Logger,
) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{
		profiles: profiles,
		creators: creators,
		brands:   brands,
		writes:   writes,
		logger:   logger,
	}
}

// Evaluate decides whether the authenticated user may access path.
// At most three sequential reads (profile, then creator or brand) and at
// most one write happen per call.
func (g *Gate) Evaluate(ctx context.Context, userID, path string) Outcome {
	profile, err := g.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			g.logger.Warn("profile load failed, treating as missing",
				zap.String("user_id", userID), zap.Error(err))
		}
		return Redirect(PathSignIn)
	}

	state := AccountState{Profile: profile}
	switch profile.UserType {
	case domain.UserTypeCreator:
		state.Creator = g.loadOrInitCreator(ctx, userID)
	case domain.UserTypeBrand:
		state.Brand = g.loadBrand(ctx, userID)
	}

	decision := Decide(state, path)

	if decision.MarkOnboardingComplete {
		g.completeOnboarding(ctx, userID)
	}

	return decision.Outcome
}

// loadOrInitCreator returns the creator record, lazily creating it with
// tiktok_connected=false on first contact. The returned record is never nil.
func (g *Gate) loadOrInitCreator(ctx context.Context, userID string) *domain.Creator {
	creator, err := g.creators.GetByUserID(ctx, userID)
	if err == nil {
		return creator
	}
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		g.logger.Warn("creator load failed, treating as missing",
			zap.String("user_id", userID), zap.Error(err))
	}

	if initErr := g.creators.EnsureExists(ctx, userID); initErr != nil {
		g.logger.Error("creator record creation failed",
			zap.String("user_id", userID), zap.Error(initErr))
		g.bufferCreatorInit(ctx, userID)
	}

	return &domain.Creator{UserID: userID}
}

// loadBrand returns the brand record or nil; absence is a valid state.
func (g *Gate) loadBrand(ctx context.Context, userID string) *domain.Brand {
	brand, err := g.brands.GetByUserID(ctx, userID)
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			g.logger.Warn("brand load failed, treating as missing",
				zap.String("user_id", userID), zap.Error(err))
		}
		return nil
	}
	return brand
}

func (g *Gate) completeOnboarding(ctx context.Context, userID string) {
	err := g.profiles.MarkOnboardingCompleted(ctx, userID)
	if err == nil {
		return
	}
	g.logger.Error("onboarding completion write failed",
		zap.String("user_id", userID), zap.Error(err))
	if g.writes == nil {
		return
	}
	if bufErr := g.writes.BufferProfileCompletion(ctx, userID); bufErr != nil {
		g.logger.Error("failed to buffer onboarding completion",
			zap.String("user_id", userID), zap.Error(bufErr))
	}
}

func (g *Gate) bufferCreatorInit(ctx context.Context, userID string) {
	if g.writes == nil {
		return
	}
	if bufErr := g.writes.BufferCreatorInit(ctx, userID); bufErr != nil {
		g.logger.Error("failed to buffer creator init",
			zap.String("user_id", userID), zap.Error(bufErr))
	}
}
