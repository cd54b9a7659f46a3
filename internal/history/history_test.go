package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.Append(Turn{
		Request:  "list all storage buckets",
		Command:  "gcloud storage buckets list",
		Executed: true,
	}))
	require.NoError(t, store.Append(Turn{
		Request: "create a vm",
		Command: "gcloud compute instances create [INSTANCE_NAME] --zone=[ZONE]",
	}))

	turns, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	// Newest first.
	assert.Equal(t, "create a vm", turns[0].Request)
	assert.False(t, turns[0].Executed)
	assert.Equal(t, "list all storage buckets", turns[1].Request)
	assert.True(t, turns[1].Executed)
	assert.WithinDuration(t, time.Now(), turns[0].CreatedAt, time.Minute)
}

func TestRecentLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(Turn{Request: "r", Command: "c"}))
	}

	turns, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, turns, 3)
}

func TestRecentEmpty(t *testing.T) {
	store := openTemp(t)

	turns, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(Turn{Request: "r", Command: "c"}))
}
