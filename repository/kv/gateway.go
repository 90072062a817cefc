package kv

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/repository"
)

const (
	EventsKey = "schedule_events"
	MemoKey   = "schedule_memo"
)

type gateway struct {
	store  repository.KeyValueStore
	logger *zap.Logger
}

// NewGateway returns an EventRepository that keeps each snapshot under a single key.
func NewGateway(store repository.KeyValueStore, logger *zap.Logger) repository.EventRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &gateway{store: store, logger: logger}
}

func (g *gateway) LoadEvents(ctx context.Context) []domain.Event {
	raw, ok, err := g.store.Get(ctx, EventsKey)
	if err != nil {
		g.readFailed(EventsKey, err)
		return []domain.Event{}
	}
	if !ok || raw == "" {
		return []domain.Event{}
	}

	var events []domain.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		g.readFailed(EventsKey, err)
		return []domain.Event{}
	}
	if events == nil {
		return []domain.Event{}
	}
	return events
}

func (g *gateway) SaveEvents(ctx context.Context, events []domain.Event) error {
	if events == nil {
		events = []domain.Event{}
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "encode events", err)
	}
	if err := g.store.Set(ctx, EventsKey, string(payload)); err != nil {
		return domain.WrapError(domain.ErrCodePersistenceWrite, "save events", err)
	}
	return nil
}

func (g *gateway) LoadMemo(ctx context.Context) string {
	text, ok, err := g.store.Get(ctx, MemoKey)
	if err != nil {
		g.readFailed(MemoKey, err)
		return ""
	}
	if !ok {
		return ""
	}
	return text
}

func (g *gateway) SaveMemo(ctx context.Context, text string) error {
	if err := g.store.Set(ctx, MemoKey, text); err != nil {
		return domain.WrapError(domain.ErrCodePersistenceWrite, "save memo", err)
	}
	return nil
}

func (g *gateway) readFailed(key string, err error) {
	readErr := domain.WrapError(domain.ErrCodePersistenceRead, "load "+key, err)
	g.logger.Warn("stored payload unreadable, using empty value", zap.String("key", key), zap.Error(readErr))
}
