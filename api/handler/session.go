package handler

import (
	"sync"
	"time"

	"github.com/fastygo/schedule/domain"
	"github.com/fastygo/schedule/usecase/navigation"
)

// Session holds the selection state of the local user and the clock that
// decides what "today" is. Handlers run concurrently, so access is serialized.
type Session struct {
	now func() time.Time
	loc *time.Location

	mu    sync.Mutex
	state navigation.State
}

func NewSession(now func() time.Time, loc *time.Location) *Session {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	s := &Session{now: now, loc: loc}
	s.state = navigation.NewState(s.Today())
	return s
}

func (s *Session) Today() time.Time {
	return s.now().In(s.loc)
}

// TodayOr parses an explicit YYYY-MM-DD override, falling back to the clock.
func (s *Session) TodayOr(override string) (time.Time, error) {
	if override == "" {
		return s.Today(), nil
	}
	t, err := domain.ParseDate(override)
	if err != nil {
		return time.Time{}, domain.WrapError(domain.ErrCodeInvalid, "invalid today", err)
	}
	return t, nil
}

func (s *Session) State() navigation.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Update(fn func(*navigation.State)) navigation.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	return s.state
}
