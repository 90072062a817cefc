package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/schedule/api/transport"
	"github.com/fastygo/schedule/pkg/httpcontext"
	memoUC "github.com/fastygo/schedule/usecase/memo"
)

type MemoHandler struct {
	baseHandler
	uc *memoUC.UseCase
}

func NewMemoHandler(uc *memoUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MemoHandler {
	return &MemoHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get memo
// @Tags memo
// @Router /api/v1/memo [get]
func (h *MemoHandler) GetMemo(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, transport.MemoResponse{Text: h.uc.Get()})
}

// @Summary Replace memo
// @Tags memo
// @Router /api/v1/memo [put]
func (h *MemoHandler) SaveMemo(ctx *fasthttp.RequestCtx) {
	var req transport.MemoRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Save(stdCtx, req.Text); err != nil {
		h.respondErrorWithMeta(ctx, err, transport.MemoResponse{Text: h.uc.Get()})
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.MemoResponse{Text: req.Text})
}
