package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/pkg/httpcontext"
	payoutUC "github.com/clipdeals/backend/usecase/payout"
)

type PayoutHandler struct {
	baseHandler
	uc *payoutUC.UseCase
}

func NewPayoutHandler(uc *payoutUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PayoutHandler {
	return &PayoutHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Summary serves both the payouts page and the API variant; the access gate
// has already enforced payment verification for brands by the time a
// request lands here.
// @Router /api/payouts [get]
func (h *PayoutHandler) Summary(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	// Brands may inspect a specific creator's earnings for a payout run.
	creatorID := string(ctx.QueryArgs().Peek("creator_id"))
	if creatorID == "" {
		creatorID = userID
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summary(stdCtx, creatorID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}
