package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/pkg/httpcontext"
	eventUC "github.com/fastygo/schedule/usecase/event"
	"github.com/fastygo/schedule/usecase/navigation"
	"github.com/fastygo/schedule/usecase/projection"
)

// DashboardHandler serves the read-only projections.
type DashboardHandler struct {
	baseHandler
	events  *eventUC.UseCase
	session *Session
}

func NewDashboardHandler(events *eventUC.UseCase, session *Session, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		events:      events,
		session:     session,
	}
}

// @Summary All projections for the current selection
// @Tags views
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Dashboard(ctx *fasthttp.RequestCtx) {
	today, err := h.session.TodayOr(string(ctx.QueryArgs().Peek("today")))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, projection.BuildDashboard(h.events.List(), today, h.session.State()))
}

// @Summary Month grid
// @Tags views
// @Router /api/v1/calendar [get]
func (h *DashboardHandler) Calendar(ctx *fasthttp.RequestCtx) {
	ref := h.session.State().CurrentMonth

	if raw := string(ctx.QueryArgs().Peek("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 || year > 9999 {
			h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "invalid year"))
			return
		}
		ref.Year = year
	}
	if raw := string(ctx.QueryArgs().Peek("month")); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "invalid month"))
			return
		}
		ref.Month = time.Month(month)
	}

	grid := projection.MonthGrid(h.events.List(), ref.Year, ref.Month).MarkToday(h.session.Today())
	h.respondSuccess(ctx, http.StatusOK, grid)
}

// @Summary Events of one day; also selects that day
// @Tags views
// @Router /api/v1/days/{date} [get]
func (h *DashboardHandler) Day(ctx *fasthttp.RequestCtx) {
	date, _ := ctx.UserValue("date").(string)
	if _, err := domain.ParseDate(date); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid date", err))
		return
	}

	h.session.Update(func(s *navigation.State) { s.SelectDay(date) })
	today := h.session.Today()
	h.respondSuccess(ctx, http.StatusOK, projection.Annotate(projection.DayBucket(h.events.List(), date), today))
}
