package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/api/transport"
	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/internal/middleware"
	"github.com/clipdeals/backend/pkg/httpcontext"
	authUC "github.com/clipdeals/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc         *authUC.UseCase
	defaultTTL time.Duration
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, ttl time.Duration) *AuthHandler {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		defaultTTL:  ttl,
	}
}

// SignInPage is the anonymous sign-in page; the access middleware bounces
// signed-in users to the dashboard before this runs.
func (h *AuthHandler) SignInPage(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"page": "signin"})
}

func (h *AuthHandler) SignUpPage(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"page": "signup"})
}

// @Summary Record a profile for a freshly authenticated identity
// @Tags auth
// @Router /api/v1/auth/signup [post]
func (h *AuthHandler) SignUp(ctx *fasthttp.RequestCtx) {
	var req transport.SignUpRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.UserID == "" {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.SignUp(stdCtx, req.UserID, domain.UserType(req.UserType))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, profile)
}

// @Summary Issue a new session
// @Tags auth
// @Router /api/v1/auth/signin [post]
func (h *AuthHandler) SignIn(ctx *fasthttp.RequestCtx) {
	var req transport.SignInRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.UserID == "" {
		h.respondInvalid(ctx)
		return
	}

	ttl := h.ttlFromRequest(req.TTL)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, token, err := h.uc.SignIn(stdCtx, req.UserID, ttl)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.setSessionCookie(ctx, token, session.ExpiresAt)
	h.respondSuccess(ctx, http.StatusCreated, session)
}

// @Summary Refresh an existing session
// @Tags auth
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.SessionID == "" {
		h.respondInvalid(ctx)
		return
	}

	ttl := h.ttlFromRequest(req.TTL)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.RefreshSession(stdCtx, req.SessionID, ttl)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

// @Summary Revoke the current session
// @Tags auth
// @Router /api/v1/auth/signout [post]
func (h *AuthHandler) SignOut(ctx *fasthttp.RequestCtx) {
	token := string(ctx.Request.Header.Cookie(middleware.SessionCookie))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.SignOut(stdCtx, token); err != nil {
		h.respondError(ctx, err)
		return
	}

	h.clearSessionCookie(ctx)
	h.respondSuccess(ctx, http.StatusOK, nil)
}

func (h *AuthHandler) ttlFromRequest(ttlSeconds int) time.Duration {
	if ttlSeconds <= 0 {
		return h.defaultTTL
	}
	return time.Duration(ttlSeconds) * time.Second
}

func (h *AuthHandler) setSessionCookie(ctx *fasthttp.RequestCtx, token string, expires time.Time) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(middleware.SessionCookie)
	cookie.SetValue(token)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetExpire(expires)
	ctx.Response.Header.SetCookie(cookie)
}

func (h *AuthHandler) clearSessionCookie(ctx *fasthttp.RequestCtx) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(middleware.SessionCookie)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(cookie)
}
