package middleware

import (
	"context"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/internal/access"
	"github.com/clipdeals/backend/pkg/httpcontext"
)

// SessionCookie carries the signed session token issued at sign-in.
const SessionCookie = "cd_session"

// SessionResolver turns a session token into a user id, or errors when the
// token is invalid, expired, or the session no longer exists.
type SessionResolver interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

// AccessControl wraps the whole router handler. Requests outside the
// protected prefix set pass through untouched; everything else goes through
// session resolution and the onboarding gate, which yields either a pass or
// a redirect. The middleware never surfaces an error page.
func AccessControl(gate *access.Gate, sessions SessionResolver, adapter *httpcontext.Adapter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			path := string(ctx.Path())
			if !access.IsProtected(path) {
				next(ctx)
				return
			}

			stdCtx, cancel := adapter.Attach(ctx)
			defer cancel()

			userID := resolveUser(stdCtx, ctx, sessions, logger)

			// Signed-in users have no business on the auth pages;
			// anonymous visitors do.
			if access.IsAuthPage(path) {
				if userID == "" {
					next(ctx)
					return
				}
				redirect(ctx, access.PathDashboard)
				return
			}

			if userID == "" {
				redirect(ctx, access.PathSignIn)
				return
			}

			outcome := gate.Evaluate(stdCtx, userID, path)
			if !outcome.Allowed() {
				redirect(ctx, outcome.Location())
				return
			}

			ctx.Request.Header.Set("X-User-ID", userID)
			next(ctx)
		}
	}
}

func resolveUser(stdCtx context.Context, ctx *fasthttp.RequestCtx, sessions SessionResolver, logger *zap.Logger) string {
	token := string(ctx.Request.Header.Cookie(SessionCookie))
	if token == "" {
		token = extractBearer(ctx)
	}
	if token == "" || sessions == nil {
		return ""
	}

	userID, err := sessions.ResolveToken(stdCtx, token)
	if err != nil {
		logger.Debug("session resolution failed", zap.Error(err))
		return ""
	}
	return userID
}

func extractBearer(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

func redirect(ctx *fasthttp.RequestCtx, location string) {
	ctx.Redirect(location, fasthttp.StatusSeeOther)
}
