package memo

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/fastygo/schedule/repository"
)

// UseCase holds the free-text memo and writes it through on every save.
type UseCase struct {
	repo   repository.EventRepository
	logger *zap.Logger

	mu   sync.RWMutex
	text string
}

func New(ctx context.Context, repo repository.EventRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
		text:   repo.LoadMemo(ctx),
	}
}

func (uc *UseCase) Get() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.text
}

// Save replaces the memo. The new text is kept in memory even if the write fails.
func (uc *UseCase) Save(ctx context.Context, text string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.text = text
	if err := uc.repo.SaveMemo(ctx, text); err != nil {
		uc.logger.Error("failed to persist memo", zap.Error(err))
		return err
	}
	return nil
}
