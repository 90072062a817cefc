package repository

import (
	"context"

	"github.com/fastygo/schedule/domain"
)

// EventRepository loads and saves full snapshots of the event list and the memo.
// Loads never fail: unreadable content yields the empty value.
type EventRepository interface {
	LoadEvents(ctx context.Context) []domain.Event
	SaveEvents(ctx context.Context, events []domain.Event) error
	LoadMemo(ctx context.Context) string
	SaveMemo(ctx context.Context, text string) error
}
