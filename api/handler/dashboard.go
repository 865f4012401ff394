package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/pkg/httpcontext"
	"github.com/clipdeals/backend/repository"
	campaignUC "github.com/clipdeals/backend/usecase/campaign"
	onboardingUC "github.com/clipdeals/backend/usecase/onboarding"
	payoutUC "github.com/clipdeals/backend/usecase/payout"
)

type DashboardHandler struct {
	baseHandler
	accounts  *onboardingUC.UseCase
	campaigns *campaignUC.UseCase
	payouts   *payoutUC.UseCase
}

func NewDashboardHandler(accounts *onboardingUC.UseCase, campaigns *campaignUC.UseCase, payouts *payoutUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		accounts:    accounts,
		campaigns:   campaigns,
		payouts:     payouts,
	}
}

// @Summary Role-aware dashboard summary
// @Tags dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	overview, err := h.accounts.Overview(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	payload := map[string]interface{}{"account": overview}

	switch overview.Profile.UserType {
	case domain.UserTypeCreator:
		if summary, sumErr := h.payouts.Summary(stdCtx, userID); sumErr == nil {
			payload["earnings"] = summary
		} else {
			h.logger.Warn("payout summary unavailable", zap.String("user_id", userID), zap.Error(sumErr))
		}
	case domain.UserTypeBrand:
		campaigns, listErr := h.campaigns.ListCampaigns(stdCtx, repository.CampaignFilter{BrandID: userID, Limit: 20})
		if listErr != nil {
			h.logger.Warn("campaign list unavailable", zap.String("user_id", userID), zap.Error(listErr))
		} else {
			payload["campaigns"] = campaigns
		}
	}

	h.respondSuccess(ctx, http.StatusOK, payload)
}
