package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"admindash/internal/backend"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type memDoc struct {
	seq uint64
	doc bson.M
}

type memSub struct {
	query backend.Query
	ch    chan backend.Snapshot
}

// Memory is a thread-safe in-process DocumentStore. Writes fan out to live
// subscriptions before the write call returns.
type Memory struct {
	mu   sync.RWMutex
	data map[string]map[string]*memDoc
	seq  uint64

	subMu sync.Mutex
	subs  map[string]map[*memSub]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]map[string]*memDoc),
		subs: make(map[string]map[*memSub]struct{}),
	}
}

func (m *Memory) Get(ctx context.Context, collection, id string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.data[collection][id]
	if !ok {
		return backend.ErrNotFound
	}
	return backend.DecodeDoc(d.doc, out)
}

func (m *Memory) Query(ctx context.Context, collection string, q backend.Query, out any) error {
	docs, err := m.run(collection, q)
	if err != nil {
		return err
	}
	return backend.DecodeDocs(docs, out)
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := backend.ToDocument(doc)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	id := m.insertLocked(collection, d)
	m.mu.Unlock()

	m.notify(collection)
	return id, nil
}

func (m *Memory) InsertMany(ctx context.Context, collection string, docs []any) error {
	prepared := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		d, err := backend.ToDocument(doc)
		if err != nil {
			return err
		}
		prepared = append(prepared, d)
	}

	m.mu.Lock()
	for _, d := range prepared {
		m.insertLocked(collection, d)
	}
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

// insertLocked must be called with m.mu held for writing.
func (m *Memory) insertLocked(collection string, d bson.M) string {
	id, _ := d["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}

	stored := make(bson.M, len(d)+1)
	for k, v := range d {
		stored[k] = v
	}
	stored["id"] = id

	if m.data[collection] == nil {
		m.data[collection] = make(map[string]*memDoc)
	}
	m.seq++
	m.data[collection][id] = &memDoc{seq: m.seq, doc: stored}
	return id
}

func (m *Memory) Update(ctx context.Context, collection, id string, patch backend.Patch) error {
	normalized, err := backend.ToDocument(bson.M(patch))
	if err != nil {
		return err
	}

	m.mu.Lock()
	d, ok := m.data[collection][id]
	if !ok {
		m.mu.Unlock()
		return backend.ErrNotFound
	}

	updated := make(bson.M, len(d.doc)+len(normalized))
	for k, v := range d.doc {
		updated[k] = v
	}
	for k, v := range normalized {
		if k == "id" {
			continue
		}
		updated[k] = v
	}
	// Mutate through the pointer: re-assigning the map entry would replace
	// the stored key with the caller's id string.
	d.doc = updated
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	if _, ok := m.data[collection][id]; !ok {
		m.mu.Unlock()
		return backend.ErrNotFound
	}
	delete(m.data[collection], id)
	m.mu.Unlock()

	m.notify(collection)
	return nil
}

func (m *Memory) Count(ctx context.Context, collection string, filter backend.Filter) (int64, error) {
	docs, err := m.run(collection, backend.Query{Filter: filter})
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (m *Memory) Subscribe(ctx context.Context, collection string, q backend.Query) (*backend.Subscription, error) {
	sub := &memSub{query: q, ch: make(chan backend.Snapshot, 1)}

	m.subMu.Lock()
	if m.subs[collection] == nil {
		m.subs[collection] = make(map[*memSub]struct{})
	}
	m.subs[collection][sub] = struct{}{}
	m.subMu.Unlock()

	release := func() {
		m.subMu.Lock()
		delete(m.subs[collection], sub)
		m.subMu.Unlock()
	}

	docs, err := m.run(collection, q)
	if err != nil {
		release()
		return nil, err
	}
	backend.Offer(sub.ch, backend.Snapshot{Collection: collection, Docs: docs, At: time.Now().UTC()})

	return backend.NewSubscription(sub.ch, release), nil
}

func (m *Memory) notify(collection string) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for sub := range m.subs[collection] {
		docs, err := m.run(collection, sub.query)
		if err != nil {
			continue
		}
		backend.Offer(sub.ch, backend.Snapshot{
			Collection: collection,
			Docs:       docs,
			At:         time.Now().UTC(),
		})
	}
}

// run evaluates q against a copy of the collection.
func (m *Memory) run(collection string, q backend.Query) ([]bson.M, error) {
	filter, err := backend.ToDocument(bson.M(q.Filter))
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	matched := make([]memDoc, 0, len(m.data[collection]))
	for _, d := range m.data[collection] {
		if matches(d.doc, filter) {
			matched = append(matched, memDoc{seq: d.seq, doc: copyDoc(d.doc)})
		}
	}
	m.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if q.OrderBy != "" {
			c := compareValues(matched[i].doc[q.OrderBy], matched[j].doc[q.OrderBy])
			if c != 0 {
				if q.Descending {
					return c > 0
				}
				return c < 0
			}
		}
		if q.Descending {
			return matched[i].seq > matched[j].seq
		}
		return matched[i].seq < matched[j].seq
	})

	start := 0
	if q.After != "" {
		start = -1
		for i, d := range matched {
			if d.doc["id"] == q.After {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, fmt.Errorf("cursor %s: %w", q.After, backend.ErrNotFound)
		}
	}
	matched = matched[start:]

	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	docs := make([]bson.M, len(matched))
	for i, d := range matched {
		docs[i] = d.doc
	}
	return docs, nil
}

func copyDoc(d bson.M) bson.M {
	c := make(bson.M, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}
