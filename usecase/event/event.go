// Package event owns the authoritative in-memory event list and writes
// a full snapshot through the repository after every mutation.
package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/repository"
)

const maxIDAttempts = 8

type UseCase struct {
	repo   repository.EventRepository
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	mu     sync.RWMutex
	events []domain.Event
}

type Option func(*UseCase)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithIDGenerator overrides the id source. Generated ids that collide are retried.
func WithIDGenerator(fn func() string) Option {
	return func(uc *UseCase) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

// New loads the stored events and returns a store that owns them.
func New(ctx context.Context, repo repository.EventRepository, logger *zap.Logger, opts ...Option) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	uc := &UseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.events = repo.LoadEvents(ctx)
	uc.logger.Info("events loaded", zap.Int("count", len(uc.events)))
	return uc
}

// Add validates the input, appends a new incomplete event and persists the list.
// When only the write fails the event is kept in memory and returned with the error.
func (uc *UseCase) Add(ctx context.Context, in domain.NewEventInput) (domain.Event, error) {
	if err := in.Validate(); err != nil {
		return domain.Event{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	id, err := uc.uniqueID()
	if err != nil {
		return domain.Event{}, err
	}

	created := in.Build(id, uc.now())
	uc.events = append(uc.events, created)
	return created, uc.persist(ctx, "add", id)
}

// Delete removes the event with the given id. Unknown ids return ErrEventNotFound
// without touching the store or the repository.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(id)
	if idx < 0 {
		return domain.ErrEventNotFound
	}

	remaining := make([]domain.Event, 0, len(uc.events)-1)
	remaining = append(remaining, uc.events[:idx]...)
	remaining = append(remaining, uc.events[idx+1:]...)
	uc.events = remaining
	return uc.persist(ctx, "delete", id)
}

// ToggleComplete flips the completed flag of the event with the given id.
func (uc *UseCase) ToggleComplete(ctx context.Context, id string) (domain.Event, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.indexOf(id)
	if idx < 0 {
		return domain.Event{}, domain.ErrEventNotFound
	}

	uc.events[idx].Completed = !uc.events[idx].Completed
	return uc.events[idx], uc.persist(ctx, "toggle", id)
}

// List returns a copy of all events in insertion order.
func (uc *UseCase) List() []domain.Event {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return append(make([]domain.Event, 0, len(uc.events)), uc.events...)
}

func (uc *UseCase) Get(id string) (domain.Event, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if idx := uc.indexOf(id); idx >= 0 {
		return uc.events[idx], true
	}
	return domain.Event{}, false
}

func (uc *UseCase) indexOf(id string) int {
	for i := range uc.events {
		if uc.events[i].ID == id {
			return i
		}
	}
	return -1
}

func (uc *UseCase) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := uc.newID()
		if id != "" && uc.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", domain.NewError(domain.ErrCodeInternal, "could not allocate a unique event id")
}

// persist must be called with mu held so writes land in mutation order.
func (uc *UseCase) persist(ctx context.Context, operation, id string) error {
	if err := uc.repo.SaveEvents(ctx, uc.events); err != nil {
		uc.logger.Error("failed to persist events",
			zap.String("operation", operation),
			zap.String("event_id", id),
			zap.Error(err))
		if !domain.IsDomainError(err, domain.ErrCodePersistenceWrite) {
			err = domain.WrapError(domain.ErrCodePersistenceWrite, "save events", err)
		}
		return err
	}
	uc.logger.Debug("events persisted", zap.String("operation", operation), zap.String("event_id", id), zap.Int("count", len(uc.events)))
	return nil
}
