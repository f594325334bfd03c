package docstore

import (
	"context"
	"testing"
	"time"
	"unsafe"

	"admindash/internal/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID        string    `bson:"id"`
	Owner     string    `bson:"owner"`
	Score     int       `bson:"score"`
	CreatedAt time.Time `bson:"createdAt"`
}

func seed(t *testing.T, m *Memory) []string {
	t.Helper()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i, owner := range []string{"a", "b", "a", "a"} {
		id, err := m.Insert(context.Background(), "things", record{
			Owner:     owner,
			Score:     i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestMemoryQueryFilterOrderAndPage(t *testing.T) {
	m := NewMemory()
	ids := seed(t, m)
	ctx := context.Background()

	var out []record
	require.NoError(t, m.Query(ctx, "things", backend.Query{
		Filter:     backend.Filter{"owner": "a"},
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      2,
	}, &out))
	require.Len(t, out, 2)
	assert.Equal(t, ids[3], out[0].ID)
	assert.Equal(t, ids[2], out[1].ID)

	require.NoError(t, m.Query(ctx, "things", backend.Query{
		Filter:     backend.Filter{"owner": "a"},
		OrderBy:    "createdAt",
		Descending: true,
		After:      out[1].ID,
	}, &out))
	require.Len(t, out, 1)
	assert.Equal(t, ids[0], out[0].ID)

	err := m.Query(ctx, "things", backend.Query{After: "missing"}, &out)
	assert.ErrorIs(t, err, backend.ErrNotFound)

	n, err := m.Count(ctx, "things", backend.Filter{"owner": "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryQueryEmptyCollection(t *testing.T) {
	var out []record
	require.NoError(t, NewMemory().Query(context.Background(), "nothing", backend.Query{}, &out))
	assert.Empty(t, out)
}

func TestMemoryUpdateDelete(t *testing.T) {
	m := NewMemory()
	ids := seed(t, m)
	ctx := context.Background()

	require.NoError(t, m.Update(ctx, "things", ids[0], backend.Patch{"score": 42, "id": "hijack"}))

	var got record
	require.NoError(t, m.Get(ctx, "things", ids[0], &got))
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, ids[0], got.ID)

	assert.ErrorIs(t, m.Update(ctx, "things", "missing", backend.Patch{"score": 1}), backend.ErrNotFound)

	require.NoError(t, m.Delete(ctx, "things", ids[0]))
	assert.ErrorIs(t, m.Delete(ctx, "things", ids[0]), backend.ErrNotFound)
	assert.ErrorIs(t, m.Get(ctx, "things", ids[0], &got), backend.ErrNotFound)
}

func TestMemoryInsertKeepsPresetID(t *testing.T) {
	m := NewMemory()
	id, err := m.Insert(context.Background(), "things", record{ID: "fixed", Owner: "a"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)
}

func TestMemorySubscriptionDeliversSnapshots(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "things", backend.Query{Filter: backend.Filter{"owner": "a"}})
	require.NoError(t, err)
	defer sub.Close()

	first := <-sub.C
	assert.Empty(t, first.Docs)

	_, err = m.Insert(ctx, "things", record{Owner: "a"})
	require.NoError(t, err)

	select {
	case snap := <-sub.C:
		var out []record
		require.NoError(t, snap.Decode(&out))
		assert.Len(t, out, 1)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after insert")
	}

	sub.Close()
	sub.Close()

	_, err = m.Insert(ctx, "things", record{Owner: "a"})
	require.NoError(t, err)
	select {
	case <-sub.C:
		t.Fatal("snapshot delivered after close")
	default:
	}
}

func TestMemorySlowSubscriberSeesLatest(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	sub, err := m.Subscribe(ctx, "things", backend.Query{})
	require.NoError(t, err)
	defer sub.Close()

	for i := 0; i < 3; i++ {
		_, err := m.Insert(ctx, "things", record{Owner: "a", Score: i})
		require.NoError(t, err)
	}

	snap := <-sub.C
	assert.Len(t, snap.Docs, 3)
}

func TestMemoryUpdateKeepsStoredKey(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.Insert(ctx, "things", record{Owner: "a"})
	require.NoError(t, err)

	// The id handed to Update shares memory with a buffer that is reused
	// afterwards, like a request param from a pooled request.
	buf := []byte(id)
	aliased := unsafe.String(&buf[0], len(buf))
	require.NoError(t, m.Update(ctx, "things", aliased, backend.Patch{"score": 7}))

	for i := range buf {
		buf[i] = 'x'
	}

	var got record
	require.NoError(t, m.Get(ctx, "things", id, &got))
	assert.Equal(t, 7, got.Score)
}
