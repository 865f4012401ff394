package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/repository"
)

// Config carries the JWT signing settings for session tokens.
type Config struct {
	Secret string
	Issuer string
}

type UseCase struct {
	profiles repository.ProfileRepository
	sessions repository.SessionRepository
	cfg      Config
	logger   *zap.Logger
}

func New(profiles repository.ProfileRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		profiles: profiles,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// SignUp records the profile for an identity the auth provider just created.
// The gate routes the user into onboarding from here.
func (uc *UseCase) SignUp(ctx context.Context, userID string, userType domain.UserType) (*domain.Profile, error) {
	if userID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if userType != domain.UserTypeCreator && userType != domain.UserTypeBrand {
		return nil, domain.NewError(domain.ErrCodeInvalid, "unknown account type")
	}

	profile := &domain.Profile{
		UserID:   userID,
		UserType: userType,
	}
	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SignIn creates a session for an existing profile and returns it together
// with the signed token the browser stores in the session cookie.
func (uc *UseCase) SignIn(ctx context.Context, userID string, ttl time.Duration) (*domain.Session, string, error) {
	if _, err := uc.profiles.GetByUserID(ctx, userID); err != nil {
		return nil, "", err
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := uc.signToken(session)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, "", err
	}
	return session, token, nil
}

// ResolveToken validates a session token and returns the owning user id.
func (uc *UseCase) ResolveToken(ctx context.Context, token string) (string, error) {
	sessionID, err := uc.parseToken(token)
	if err != nil {
		return "", domain.WrapError(domain.ErrCodeUnauthorized, "invalid session token", err)
	}

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return "", domain.ErrSessionNotFound
	}
	return session.UserID, nil
}

// RefreshSession extends an existing session's TTL.
func (uc *UseCase) RefreshSession(ctx context.Context, sessionID string, ttl time.Duration) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Extend(ctx, sessionID, int(ttl.Seconds())); err != nil {
		return nil, err
	}
	session.ExpiresAt = time.Now().Add(ttl)
	return session, nil
}

// SignOut revokes the session referenced by the token. An unparseable token
// is already signed out.
func (uc *UseCase) SignOut(ctx context.Context, token string) error {
	sessionID, err := uc.parseToken(token)
	if err != nil {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(session *domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.UserID,
		Issuer:    uc.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.cfg.Secret))
}

func (uc *UseCase) parseToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	// Claims validation is skipped: the session store is authoritative for
	// expiry, and an expired token must still yield its session id so the
	// stale session gets evicted.
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(uc.cfg.Secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid || claims.ID == "" {
		if err == nil {
			err = fmt.Errorf("token has no session id")
		}
		return "", err
	}
	return claims.ID, nil
}
