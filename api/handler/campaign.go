package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/clipdeals/backend/api/transport"
	"github.com/clipdeals/backend/domain"
	"github.com/clipdeals/backend/pkg/httpcontext"
	"github.com/clipdeals/backend/repository"
	campaignUC "github.com/clipdeals/backend/usecase/campaign"
)

type CampaignHandler struct {
	baseHandler
	uc *campaignUC.UseCase
}

func NewCampaignHandler(uc *campaignUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List campaigns
// @Tags campaigns
// @Router /campaigns [get]
func (h *CampaignHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.CampaignFilter{
		BrandID: string(ctx.QueryArgs().Peek("brand_id")),
		Status:  string(ctx.QueryArgs().Peek("status")),
		Limit:   ctx.QueryArgs().GetUintOrZero("limit"),
		Offset:  ctx.QueryArgs().GetUintOrZero("offset"),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	campaigns, err := h.uc.ListCampaigns(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, campaigns)
}

// PublicView serves the campaign detail page; it sits outside the protected
// prefix set and needs no session.
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) PublicView(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	campaign, err := h.uc.GetCampaign(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, campaign)
}

// @Summary Create a campaign
// @Tags campaigns
// @Router /campaigns/new [post]
func (h *CampaignHandler) Create(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	var req transport.CampaignRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Title == "" {
		h.respondInvalid(ctx)
		return
	}

	campaign := &domain.Campaign{
		BrandID:           userID,
		Title:             req.Title,
		Brief:             req.Brief,
		Status:            req.Status,
		BudgetCents:       req.BudgetCents,
		RatePerMilleCents: req.RatePerMilleCents,
		Metadata:          req.Metadata,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateCampaign(stdCtx, campaign)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update a campaign
// @Tags campaigns
// @Router /api/v1/campaigns/{id} [put]
func (h *CampaignHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.CampaignRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	existing, err := h.uc.GetCampaign(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if existing.BrandID != userID {
		h.respondError(ctx, domain.NewError(domain.ErrCodeForbidden, "campaign belongs to another brand"))
		return
	}

	existing.Title = req.Title
	existing.Brief = req.Brief
	existing.Status = req.Status
	existing.BudgetCents = req.BudgetCents
	existing.RatePerMilleCents = req.RatePerMilleCents
	existing.Metadata = req.Metadata

	updated, err := h.uc.UpdateCampaign(stdCtx, existing)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete a campaign
// @Tags campaigns
// @Router /api/v1/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	existing, err := h.uc.GetCampaign(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if existing.BrandID != userID {
		h.respondError(ctx, domain.NewError(domain.ErrCodeForbidden, "campaign belongs to another brand"))
		return
	}

	if err := h.uc.DeleteCampaign(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}
