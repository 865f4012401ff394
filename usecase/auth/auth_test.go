package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipdeals/backend/domain"
)

type stubProfiles struct {
	profile *domain.Profile
}

func (s *stubProfiles) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfiles) Upsert(ctx context.Context, profile *domain.Profile) error {
	s.profile = profile
	return nil
}

func (s *stubProfiles) MarkOnboardingCompleted(ctx context.Context, userID string) error {
	return nil
}

type stubSessions struct {
	sessions map[string]*domain.Session
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: map[string]*domain.Session{}}
}

func (s *stubSessions) Get(ctx context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessions) Save(ctx context.Context, session *domain.Session) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessions) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *stubSessions) Extend(ctx context.Context, id string, ttlSeconds int) error {
	session, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.ExpiresAt = time.Now().Add(time.Duration(ttlSeconds) * time.Second)
	return nil
}

func newTestUseCase(profiles *stubProfiles, sessions *stubSessions) *UseCase {
	return New(profiles, sessions, Config{Secret: "test-secret", Issuer: "clipdeals"}, nil)
}

func TestSignUpRejectsUnknownAccountType(t *testing.T) {
	uc := newTestUseCase(&stubProfiles{}, newStubSessions())

	_, err := uc.SignUp(context.Background(), "usr-1", "moderator")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSignUpCreatesProfile(t *testing.T) {
	profiles := &stubProfiles{}
	uc := newTestUseCase(profiles, newStubSessions())

	profile, err := uc.SignUp(context.Background(), "usr-1", domain.UserTypeCreator)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeCreator, profile.UserType)
	assert.False(t, profile.OnboardingCompleted)
	require.NotNil(t, profiles.profile)
}

func TestSignInTokenRoundTrip(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	sessions := newStubSessions()
	uc := newTestUseCase(profiles, sessions)

	session, token, err := uc.SignIn(context.Background(), "usr-1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := uc.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", userID)
	assert.Contains(t, sessions.sessions, session.ID)
}

func TestSignInRequiresExistingProfile(t *testing.T) {
	uc := newTestUseCase(&stubProfiles{}, newStubSessions())

	_, _, err := uc.SignIn(context.Background(), "usr-1", time.Hour)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestResolveTokenRejectsTampering(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	uc := newTestUseCase(profiles, newStubSessions())

	_, token, err := uc.SignIn(context.Background(), "usr-1", time.Hour)
	require.NoError(t, err)

	other := New(profiles, newStubSessions(), Config{Secret: "other-secret", Issuer: "clipdeals"}, nil)
	_, err = other.ResolveToken(context.Background(), token)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestResolveTokenConsultsSessionStore(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	sessions := newStubSessions()
	uc := newTestUseCase(profiles, sessions)

	session, token, err := uc.SignIn(context.Background(), "usr-1", time.Hour)
	require.NoError(t, err)

	// The claim is still valid, but the session was revoked server-side.
	require.NoError(t, sessions.Delete(context.Background(), session.ID))
	_, err = uc.ResolveToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestResolveTokenEvictsExpiredSession(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	sessions := newStubSessions()
	uc := newTestUseCase(profiles, sessions)

	session, token, err := uc.SignIn(context.Background(), "usr-1", -time.Minute)
	require.NoError(t, err)

	_, err = uc.ResolveToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.NotContains(t, sessions.sessions, session.ID)
}

func TestSignOutRevokesSession(t *testing.T) {
	profiles := &stubProfiles{profile: &domain.Profile{UserID: "usr-1", UserType: domain.UserTypeCreator}}
	sessions := newStubSessions()
	uc := newTestUseCase(profiles, sessions)

	_, token, err := uc.SignIn(context.Background(), "usr-1", time.Hour)
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(context.Background(), token))
	assert.Empty(t, sessions.sessions)

	// Garbage tokens are already signed out.
	assert.NoError(t, uc.SignOut(context.Background(), "not-a-token"))
}
