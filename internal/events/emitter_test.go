package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"admindash/internal/backend"
	"admindash/internal/docstore"
	"admindash/internal/models"

	"github.com/stretchr/testify/require"
)

type failingStore struct {
	backend.DocumentStore
}

func (failingStore) InsertMany(context.Context, string, []any) error {
	return errors.New("activity collection offline")
}

func listActivity(t *testing.T, store backend.DocumentStore) []models.ActivityEntry {
	t.Helper()

	var entries []models.ActivityEntry
	err := store.Query(context.Background(), models.CollectionActivity, backend.Query{
		OrderBy:    "timestamp",
		Descending: true,
	}, &entries)
	require.NoError(t, err)
	return entries
}

func TestEmitterWritesEntries(t *testing.T) {
	store := docstore.NewMemory()
	em := NewEmitter(store, "test")
	defer em.Close()

	em.ProjectCreated("u1", models.Project{ID: "p1", Name: "Alpha"})
	em.TaskStatusChanged("u1", "t1", models.TaskStatusCompleted)
	em.Flush()

	entries := listActivity(t, store)
	require.Len(t, entries, 2)

	byType := map[models.ActivityType]models.ActivityEntry{}
	for _, entry := range entries {
		require.NotEmpty(t, entry.ID)
		require.Equal(t, "u1", entry.UserID)
		require.False(t, entry.Timestamp.IsZero())
		byType[entry.Type] = entry
	}

	require.Equal(t, `Project "Alpha" created`, byType[models.ActivityProjectCreated].Description)
	require.Equal(t, "p1", byType[models.ActivityProjectCreated].RelatedID)
	require.Equal(t, "Task status changed to completed", byType[models.ActivityTaskStatusChange].Description)
	require.Zero(t, em.Failures())
}

func TestEmitterFlushesOnBatchSize(t *testing.T) {
	store := docstore.NewMemory()
	em := NewEmitterWithConfig(store, Config{Buffer: 10, BatchSize: 3, FlushEvery: time.Hour})
	defer em.Close()

	for i := 0; i < 3; i++ {
		em.TaskAssigned("u1", "t1")
	}

	require.Eventually(t, func() bool {
		return len(listActivity(t, store)) == 3
	}, time.Second, 10*time.Millisecond)
}

func TestEmitterWithoutBuffer(t *testing.T) {
	store := docstore.NewMemory()
	em := NewEmitterWithConfig(store, Config{Buffer: 0, BatchSize: 50, FlushEvery: time.Hour})
	defer em.Close()

	em.UserDeleted("admin", "u2")
	em.Flush()

	entries := listActivity(t, store)
	require.Len(t, entries, 1)
	require.Equal(t, "User deleted from system", entries[0].Description)
}

func TestEmitterCountsFailures(t *testing.T) {
	em := NewEmitter(failingStore{}, "test")
	defer em.Close()

	em.UserStatusChanged("admin", "u1", false)
	em.UserRoleChanged("admin", "u1", models.RoleManager)
	em.Flush()

	require.Equal(t, int64(2), em.Failures())
}

func TestEmitterCloseWritesQueuedEntries(t *testing.T) {
	store := docstore.NewMemory()
	em := NewEmitterWithConfig(store, Config{Buffer: 10, BatchSize: 50, FlushEvery: time.Hour})

	em.UserProfileUpdated("u1", "u1")
	em.Close()
	em.Close()

	require.Len(t, listActivity(t, store), 1)

	// emitting after close falls back to a direct write
	em.ProjectDeleted("u1", "p1")
	require.Len(t, listActivity(t, store), 2)
}

func TestEmitterConcurrentEmit(t *testing.T) {
	store := docstore.NewMemory()
	em := NewEmitter(store, "test")
	defer em.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			em.TaskUpdated("u1", "t1")
		}()
	}
	wg.Wait()
	em.Flush()

	require.Len(t, listActivity(t, store), 20)
}

func TestNilEmitterIsNoop(t *testing.T) {
	var em *Emitter

	em.ProjectUpdated("u1", "p1")
	em.Flush()
	em.Close()
	require.Zero(t, em.Failures())
}
