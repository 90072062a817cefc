package event

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/repository/kv"
	"github.com/fastygo/schedule/repository/memory"
)

type recordingRepo struct {
	stored  []domain.Event
	saves   int
	saveErr error
}

func (r *recordingRepo) LoadEvents(context.Context) []domain.Event {
	return append([]domain.Event{}, r.stored...)
}

func (r *recordingRepo) SaveEvents(_ context.Context, events []domain.Event) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = append([]domain.Event(nil), events...)
	return nil
}

func (r *recordingRepo) LoadMemo(context.Context) string         { return "" }
func (r *recordingRepo) SaveMemo(context.Context, string) error { return nil }

var fixedNow = time.Date(2024, time.March, 13, 8, 0, 0, 0, time.UTC)

func newStore(t *testing.T, repo *recordingRepo) *UseCase {
	t.Helper()
	return New(context.Background(), repo, nil, WithClock(func() time.Time { return fixedNow }))
}

func input(title, date string) domain.NewEventInput {
	return domain.NewEventInput{Title: title, Category: domain.CategoryAssignment, Date: date}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	repo := &recordingRepo{}
	uc := newStore(t, repo)

	created, err := uc.Add(ctx, domain.NewEventInput{
		Title:       "Math HW",
		Category:    domain.CategoryAssignment,
		Date:        "2024-03-15",
		Memo:        "p.42",
		IsImportant: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)
	assert.Equal(t, "2024-03-13T08:00:00.000Z", created.CreatedAt)

	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, []domain.Event{created}, repo.stored)
	assert.Equal(t, []domain.Event{created}, uc.List())

	got, ok := uc.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	repo := &recordingRepo{}
	uc := newStore(t, repo)

	_, err := uc.Add(ctx, input("bad", "2024-02-31"))
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.Add(ctx, domain.NewEventInput{Title: "x", Category: "holiday", Date: "2024-03-01"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	assert.Empty(t, uc.List())
	assert.Equal(t, 0, repo.saves)
}

func TestIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	uc := newStore(t, &recordingRepo{})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		e, err := uc.Add(ctx, input(fmt.Sprintf("task %d", i), "2024-03-15"))
		require.NoError(t, err)
		seen[e.ID] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestCollidingIDGeneratorIsRetried(t *testing.T) {
	ctx := context.Background()
	ids := []string{"a", "a", "a", "b"}
	next := 0
	uc := New(ctx, &recordingRepo{}, nil, WithIDGenerator(func() string {
		id := ids[next%len(ids)]
		next++
		return id
	}))

	first, err := uc.Add(ctx, input("one", "2024-03-15"))
	require.NoError(t, err)
	second, err := uc.Add(ctx, input("two", "2024-03-15"))
	require.NoError(t, err)
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)

	stuck := New(ctx, &recordingRepo{}, nil, WithIDGenerator(func() string { return "same" }))
	_, err = stuck.Add(ctx, input("one", "2024-03-15"))
	require.NoError(t, err)
	_, err = stuck.Add(ctx, input("two", "2024-03-15"))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
	assert.Len(t, stuck.List(), 1)
}

func TestToggleCompleteIsAnInvolution(t *testing.T) {
	ctx := context.Background()
	repo := &recordingRepo{}
	uc := newStore(t, repo)

	e, err := uc.Add(ctx, input("Math HW", "2024-03-15"))
	require.NoError(t, err)

	toggled, err := uc.ToggleComplete(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, repo.stored[0].Completed)

	toggled, err = uc.ToggleComplete(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
	assert.Equal(t, e, toggled)
	assert.Equal(t, 3, repo.saves)

	_, err = uc.ToggleComplete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Equal(t, 3, repo.saves)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := &recordingRepo{}
	uc := newStore(t, repo)

	a, _ := uc.Add(ctx, input("a", "2024-03-15"))
	b, _ := uc.Add(ctx, input("b", "2024-03-16"))
	c, _ := uc.Add(ctx, input("c", "2024-03-17"))
	snapshot := uc.List()

	require.NoError(t, uc.Delete(ctx, b.ID))
	assert.Equal(t, []domain.Event{a, c}, uc.List())
	assert.Equal(t, []domain.Event{a, c}, repo.stored)
	assert.Equal(t, []domain.Event{a, b, c}, snapshot, "earlier snapshots are not affected")

	saves := repo.saves
	err := uc.Delete(ctx, "unknown")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Len(t, uc.List(), 2)
	assert.Equal(t, saves, repo.saves)
}

func TestListIsACopy(t *testing.T) {
	ctx := context.Background()
	uc := newStore(t, &recordingRepo{})
	e, _ := uc.Add(ctx, input("a", "2024-03-15"))

	list := uc.List()
	list[0].Title = "changed"
	got, _ := uc.Get(e.ID)
	assert.Equal(t, "a", got.Title)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := &recordingRepo{saveErr: errors.New("quota exceeded")}
	uc := newStore(t, repo)

	created, err := uc.Add(ctx, input("a", "2024-03-15"))
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodePersistenceWrite))
	assert.NotEmpty(t, created.ID)
	assert.Len(t, uc.List(), 1)

	_, err = uc.ToggleComplete(ctx, created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodePersistenceWrite))
	got, _ := uc.Get(created.ID)
	assert.True(t, got.Completed)
}

func TestReloadFromGateway(t *testing.T) {
	ctx := context.Background()
	gw := kv.NewGateway(memory.New(), nil)

	uc := New(ctx, gw, nil)
	a, err := uc.Add(ctx, input("a", "2024-03-15"))
	require.NoError(t, err)
	b, err := uc.Add(ctx, input("b", "2024-03-10"))
	require.NoError(t, err)
	_, err = uc.ToggleComplete(ctx, b.ID)
	require.NoError(t, err)

	reloaded := New(ctx, gw, nil)
	assert.Equal(t, uc.List(), reloaded.List())
	got, _ := reloaded.Get(a.ID)
	assert.Equal(t, a, got)
}
