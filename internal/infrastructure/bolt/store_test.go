package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "schedule.db")

	s, err := Open(path, "")
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "schedule_memo")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "schedule_memo", "hello"))
	require.NoError(t, s.Set(ctx, "schedule_events", "[]"))
	require.NoError(t, s.Ping(ctx))

	size, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)
	require.NoError(t, s.Close())

	reopened, err := Open(path, "")
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "schedule_memo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "kv.db"), "custom")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))
	v, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", v)
}

func TestNilStore(t *testing.T) {
	var s *Store
	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, s.Set(context.Background(), "k", "v"))
	assert.Error(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close())
}
