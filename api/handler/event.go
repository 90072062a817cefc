package handler

import (
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/schedule/api/transport"
	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/pkg/httpcontext"
	eventUC "github.com/fastygo/schedule/usecase/event"
	"github.com/fastygo/schedule/usecase/projection"
)

type EventHandler struct {
	baseHandler
	uc      *eventUC.UseCase
	session *Session
}

func NewEventHandler(uc *eventUC.UseCase, session *Session, adapter *httpcontext.Adapter, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		session:     session,
	}
}

// @Summary List events of a category, or all of them
// @Tags events
// @Router /api/v1/events [get]
func (h *EventHandler) ListEvents(ctx *fasthttp.RequestCtx) {
	category := strings.TrimSpace(string(ctx.QueryArgs().Peek("category")))
	if category == "" {
		category = domain.CategoryAll
	}
	today := h.session.Today()
	h.respondSuccess(ctx, http.StatusOK, projection.Annotate(projection.CategoryList(h.uc.List(), category), today))
}

// @Summary Get event
// @Tags events
// @Router /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	e, ok := h.uc.Get(id)
	if !ok {
		h.respondError(ctx, domain.ErrEventNotFound)
		return
	}
	today := h.session.Today()
	h.respondSuccess(ctx, http.StatusOK, projection.Item{Event: e, DueSoon: projection.DueSoon(e, today)})
}

// @Summary Create event
// @Tags events
// @Router /api/v1/events [post]
func (h *EventHandler) CreateEvent(ctx *fasthttp.RequestCtx) {
	var req transport.EventRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Add(stdCtx, domain.NewEventInput{
		Title:       req.Title,
		Category:    domain.Category(req.Category),
		Date:        req.Date,
		Memo:        req.Memo,
		IsImportant: req.IsImportant,
	})
	h.respondMutation(ctx, http.StatusCreated, &created, err)
}

// @Summary Delete event
// @Tags events
// @Router /api/v1/events/{id} [delete]
func (h *EventHandler) DeleteEvent(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.Delete(stdCtx, id)
	h.respondMutation(ctx, http.StatusOK, nil, err)
}

// @Summary Toggle completion
// @Tags events
// @Router /api/v1/events/{id}/toggle [post]
func (h *EventHandler) ToggleEvent(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	toggled, err := h.uc.ToggleComplete(stdCtx, id)
	h.respondMutation(ctx, http.StatusOK, &toggled, err)
}

// respondMutation returns the recomputed dashboard. A failed write still
// changed the in-memory store, so the dashboard travels in the error meta.
func (h *EventHandler) respondMutation(ctx *fasthttp.RequestCtx, status int, e *domain.Event, err error) {
	if err != nil && !domain.IsDomainError(err, domain.ErrCodePersistenceWrite) {
		h.respondError(ctx, err)
		return
	}

	result := transport.MutationResult{
		Dashboard: projection.BuildDashboard(h.uc.List(), h.session.Today(), h.session.State()),
	}
	if e != nil {
		result.Event = e
	}
	if err != nil {
		h.respondErrorWithMeta(ctx, err, result)
		return
	}
	h.respondSuccess(ctx, status, result)
}
