package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Pinger is implemented by every key-value backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor periodically pings the configured storage backend.
type Monitor struct {
	driver   string
	target   Pinger
	interval time.Duration
	logger   *zap.Logger
	cron     *cron.Cron

	mu     sync.RWMutex
	status Status
}

func New(driver string, target Pinger, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval < time.Second {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		driver:   driver,
		target:   target,
		interval: interval,
		logger:   logger,
		cron:     cron.New(cron.WithSeconds()),
		status:   Status{Driver: driver},
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = m.cron.AddFunc(schedule, m.Refresh)
	return m
}

// Start runs a first check synchronously and then schedules the rest.
func (m *Monitor) Start() {
	m.Refresh()
	m.cron.Start()
	m.logger.Info("storage monitor started", zap.String("driver", m.driver), zap.Duration("interval", m.interval))
}

// Stop waits for a running check to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) {
	stopCtx := m.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	m.logger.Info("storage monitor stopped")
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Online
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh pings the backend once and records the outcome.
func (m *Monitor) Refresh() {
	status := Status{Driver: m.driver, LastCheck: time.Now()}
	if m.target == nil {
		status.Error = "no storage configured"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := m.target.Ping(ctx)
		cancel()
		if err != nil {
			status.Error = err.Error()
		} else {
			status.Online = true
		}
	}

	m.mu.Lock()
	previous := m.status
	m.status = status
	m.mu.Unlock()

	if previous.Online && !status.Online {
		m.logger.Warn("storage went offline", zap.String("driver", m.driver), zap.String("error", status.Error))
	} else if !previous.Online && status.Online && !previous.LastCheck.IsZero() {
		m.logger.Info("storage back online", zap.String("driver", m.driver))
	}
}
