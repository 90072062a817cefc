package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/schedule/api/transport"
	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/pkg/httpcontext"
	eventUC "github.com/fastygo/schedule/usecase/event"
	"github.com/fastygo/schedule/usecase/navigation"
	"github.com/fastygo/schedule/usecase/projection"
)

// SelectionHandler changes what the presentation layer is looking at and
// replies with the dashboard for the new selection.
type SelectionHandler struct {
	baseHandler
	events  *eventUC.UseCase
	session *Session
}

func NewSelectionHandler(events *eventUC.UseCase, session *Session, adapter *httpcontext.Adapter, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		events:      events,
		session:     session,
	}
}

// @Summary Current selection
// @Tags selection
// @Router /api/v1/selection [get]
func (h *SelectionHandler) GetSelection(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.session.State())
}

// @Summary Move the calendar by whole months
// @Tags selection
// @Router /api/v1/selection/month [post]
func (h *SelectionHandler) SetMonth(ctx *fasthttp.RequestCtx) {
	var req transport.MonthRequest
	if !h.decode(ctx, &req) {
		return
	}
	h.apply(ctx, func(s *navigation.State) { s.SetMonth(req.Delta) })
}

// @Summary Select a day, or clear it with an empty date
// @Tags selection
// @Router /api/v1/selection/day [post]
func (h *SelectionHandler) SelectDay(ctx *fasthttp.RequestCtx) {
	var req transport.DayRequest
	if !h.decode(ctx, &req) {
		return
	}
	if req.Date == "" {
		h.apply(ctx, func(s *navigation.State) { s.ClearDay() })
		return
	}
	if _, err := domain.ParseDate(req.Date); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid date", err))
		return
	}
	h.apply(ctx, func(s *navigation.State) { s.SelectDay(req.Date) })
}

// @Summary Open the list view for a category or "all"
// @Tags selection
// @Router /api/v1/selection/category [post]
func (h *SelectionHandler) ShowCategory(ctx *fasthttp.RequestCtx) {
	var req transport.CategoryRequest
	if !h.decode(ctx, &req) {
		return
	}
	h.apply(ctx, func(s *navigation.State) { s.ShowCategory(req.Category) })
}

// @Summary Switch the active view
// @Tags selection
// @Router /api/v1/selection/view [post]
func (h *SelectionHandler) SetView(ctx *fasthttp.RequestCtx) {
	var req transport.ViewRequest
	if !h.decode(ctx, &req) {
		return
	}
	h.apply(ctx, func(s *navigation.State) { s.SetView(navigation.View(req.View)) })
}

func (h *SelectionHandler) apply(ctx *fasthttp.RequestCtx, fn func(*navigation.State)) {
	state := h.session.Update(fn)
	h.respondSuccess(ctx, http.StatusOK, projection.BuildDashboard(h.events.List(), h.session.Today(), state))
}
