package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	m.Register("store", func(context.Context) error { order = append(order, "store"); return nil })
	m.Register("monitor", func(context.Context) error { order = append(order, "monitor"); return errors.New("stuck") })
	m.Register("http_server", func(context.Context) error { order = append(order, "http_server"); return nil })
	m.Register("ignored", nil)

	err := m.Shutdown(context.Background())
	assert.EqualError(t, err, "stuck")
	assert.Equal(t, []string{"http_server", "monitor", "store"}, order)

	assert.NoError(t, m.Shutdown(context.Background()))
	assert.Len(t, order, 3, "hooks run once")
}

func TestShutdownPassesDeadline(t *testing.T) {
	m := New(50*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return nil
	})
	assert.NoError(t, m.Shutdown(context.Background()))
}
