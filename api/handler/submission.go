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
	submissionUC "github.com/clipdeals/backend/usecase/submission"
)

type SubmissionHandler struct {
	baseHandler
	uc *submissionUC.UseCase
}

func NewSubmissionHandler(uc *submissionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Submit a video to a campaign
// @Tags submissions
// @Router /api/v1/submissions [post]
func (h *SubmissionHandler) Submit(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	var req transport.SubmissionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx)
		return
	}

	submission := &domain.Submission{
		CampaignID:    req.CampaignID,
		CreatorID:     userID,
		VideoURL:      req.VideoURL,
		TikTokVideoID: req.TikTokVideoID,
		Metadata:      req.Metadata,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Submit(stdCtx, submission)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary List submissions
// @Tags submissions
// @Router /api/v1/submissions [get]
func (h *SubmissionHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	filter := repository.SubmissionFilter{
		CampaignID: string(ctx.QueryArgs().Peek("campaign_id")),
		CreatorID:  string(ctx.QueryArgs().Peek("creator_id")),
		Status:     string(ctx.QueryArgs().Peek("status")),
		Limit:      ctx.QueryArgs().GetUintOrZero("limit"),
		Offset:     ctx.QueryArgs().GetUintOrZero("offset"),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	submissions, err := h.uc.ListSubmissions(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, submissions)
}

// @Summary Approve or reject a submission
// @Tags submissions
// @Router /api/v1/submissions/{id}/review [post]
func (h *SubmissionHandler) Review(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.ReviewRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reviewed, err := h.uc.Review(stdCtx, id, userID, req.Approve)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, reviewed)
}

// @Summary Refresh a submission's view count
// @Tags submissions
// @Router /api/v1/submissions/{id}/views [post]
func (h *SubmissionHandler) UpdateViews(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		h.respondUnauthorized(ctx)
		return
	}

	id, _ := ctx.UserValue("id").(string)
	var req transport.ViewsUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || id == "" || req.Views < 0 {
		h.respondInvalid(ctx)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateViews(stdCtx, id, req.Views)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}
