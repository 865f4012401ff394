package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/api/transport"
	"github.com/clipdeals/backend/pkg/httpcontext"
	onboardingUC "github.com/clipdeals/backend/usecase/onboarding"
)

type OnboardingHandler struct {
	baseHandler
	uc *onboardingUC.UseCase
}

func NewOnboardingHandler(uc *onboardingUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Step serves any onboarding step page: the current account state plus the
// step name, enough for the client to render the right form.
func (h *OnboardingHandler) Step(step string) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID := h.userID(ctx)
		if userID == "" {
			h.respondUnauthorized(ctx)
			return
		}

		stdCtx, cancel := h.requestContext(ctx)
		defer cancel()

		overview, err := h.uc.Overview(stdCtx, userID)
		if err != nil {
			h.respondError(ctx, err)
			return
		}
		h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
			"step":    step,
			"account": overview,
		})
	}
}

// @Summary Record the creator's organization name
// @Tags onboarding
// @Router /onboarding/creator/profile [post]
func (h *OnboardingHandler) SaveCreatorProfile(ctx *fasthttp.RequestCtx) {
	h.saveOrganization(ctx, true)
}

// @Summary Record the brand's organization name
// @Tags onboarding
// @Router /onboarding/brand/profile [post]
func (h *OnboardingHandler) SaveBrandProfile(ctx *fasthttp.RequestCtx) {
	h.saveOrganization(ctx, false)
}

func (h *OnboardingHandler) saveOrganization(ctx *fasthttp.RequestCtx, creator bool) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	var req transport.OrganizationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	save := h.uc.SaveBrandProfile
	if creator {
		save = h.uc.SaveCreatorProfile
	}

	profile, err := save(stdCtx, userID, req.OrganizationName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Mark the creator's TikTok account as connected
// @Tags onboarding
// @Router /onboarding/creator/tiktok [post]
func (h *OnboardingHandler) ConnectTikTok(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	var req transport.TikTokConnectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	creator, err := h.uc.ConnectTikTok(stdCtx, userID, req.Username)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, creator)
}

// @Summary Record a verified payment method for the brand
// @Tags onboarding
// @Router /onboarding/brand/payments [post]
func (h *OnboardingHandler) VerifyPayment(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	var req transport.PaymentSetupRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	brand, err := h.uc.VerifyBrandPayment(stdCtx, userID, req.StripeCustomerID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, brand)
}
