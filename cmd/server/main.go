package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/schedule/api/handler"
	"github.com/fastygo/schedule/internal/config"
	"github.com/fastygo/schedule/internal/infrastructure/monitor"
	"github.com/fastygo/schedule/internal/middleware"
	"github.com/fastygo/schedule/internal/router"
	"github.com/fastygo/schedule/internal/services/lifecycle"
	"github.com/fastygo/schedule/pkg/httpcontext"
	"github.com/fastygo/schedule/pkg/logger"
	"github.com/fastygo/schedule/repository/kv"
	eventUC "github.com/fastygo/schedule/usecase/event"
	memoUC "github.com/fastygo/schedule/usecase/memo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		zapLogger.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := openBackend(appCtx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("storage unavailable", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return store.Close()
	})

	mon := monitor.New(cfg.Storage.Driver, store, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop(ctx)
		return nil
	})

	gateway := kv.NewGateway(store, zapLogger)

	loadCtx, loadCancel := context.WithTimeout(appCtx, cfg.Context.RequestTimeout)
	events := eventUC.New(loadCtx, gateway, zapLogger.Named("events"))
	memo := memoUC.New(loadCtx, gateway, zapLogger.Named("memo"))
	loadCancel()

	session := apiHandler.NewSession(time.Now, loc)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Events:    apiHandler.NewEventHandler(events, session, ctxAdapter, zapLogger),
		Views:     apiHandler.NewDashboardHandler(events, session, ctxAdapter, zapLogger),
		Memo:      apiHandler.NewMemoHandler(memo, ctxAdapter, zapLogger),
		Selection: apiHandler.NewSelectionHandler(events, session, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers, middleware.RequestLogger(zapLogger.Named("http")))

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()), zap.String("storage", cfg.Storage.Driver))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Error("server crashed", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
