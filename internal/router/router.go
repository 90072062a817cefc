package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/schedule/api/handler"
)

type Handlers struct {
	Events    *apiHandler.EventHandler
	Views     *apiHandler.DashboardHandler
	Memo      *apiHandler.MemoHandler
	Selection *apiHandler.SelectionHandler
	Health    *apiHandler.HealthHandler
}

// New wires the bridge routes. wrap is applied to every route.
func New(handlers Handlers, wrap func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	if wrap == nil {
		wrap = func(next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}
	r := router.New()

	if handlers.Health != nil {
		r.GET("/health", wrap(handlers.Health.Check))
	}

	r.GET("/api/v1/events", wrap(handlers.Events.ListEvents))
	r.POST("/api/v1/events", wrap(handlers.Events.CreateEvent))
	r.GET("/api/v1/events/{id}", wrap(handlers.Events.GetEvent))
	r.DELETE("/api/v1/events/{id}", wrap(handlers.Events.DeleteEvent))
	r.POST("/api/v1/events/{id}/toggle", wrap(handlers.Events.ToggleEvent))

	r.GET("/api/v1/dashboard", wrap(handlers.Views.Dashboard))
	r.GET("/api/v1/calendar", wrap(handlers.Views.Calendar))
	r.GET("/api/v1/days/{date}", wrap(handlers.Views.Day))

	r.GET("/api/v1/memo", wrap(handlers.Memo.GetMemo))
	r.PUT("/api/v1/memo", wrap(handlers.Memo.SaveMemo))

	r.GET("/api/v1/selection", wrap(handlers.Selection.GetSelection))
	r.POST("/api/v1/selection/month", wrap(handlers.Selection.SetMonth))
	r.POST("/api/v1/selection/day", wrap(handlers.Selection.SelectDay))
	r.POST("/api/v1/selection/category", wrap(handlers.Selection.ShowCategory))
	r.POST("/api/v1/selection/view", wrap(handlers.Selection.SetView))

	return r
}
