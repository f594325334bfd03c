package events

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"admindash/internal/backend"
	"admindash/internal/logging"
	"admindash/internal/models"
)

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Emitter appends activity entries to the activity collection off the request
// path. Writes are best effort: a failed write is logged and counted, never
// returned to the caller.
type Emitter struct {
	store backend.DocumentStore
	buf   chan models.ActivityEntry
	kick  chan struct{}
	cfg   Config

	wg        sync.WaitGroup
	onceClose sync.Once

	mu      sync.Mutex
	idle    *sync.Cond
	pending int
	closed  bool

	failures atomic.Int64
}

func NewEmitter(store backend.DocumentStore, deployment string) *Emitter {
	return NewEmitterWithConfig(store, selectConfig(deployment))
}

func NewEmitterWithConfig(store backend.DocumentStore, cfg Config) *Emitter {
	e := &Emitter{
		store: store,
		buf:   make(chan models.ActivityEntry, cfg.Buffer),
		kick:  make(chan struct{}, 1),
		cfg:   cfg,
	}
	e.idle = sync.NewCond(&e.mu)

	e.wg.Add(1)
	go e.worker()

	return e
}

func selectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

// Failures is the number of entries that could not be written.
func (e *Emitter) Failures() int64 {
	if e == nil {
		return 0
	}
	return e.failures.Load()
}

// Flush blocks until every entry emitted so far has been written or dropped.
func (e *Emitter) Flush() {
	if e == nil {
		return
	}

	select {
	case e.kick <- struct{}{}:
	default:
	}

	e.mu.Lock()
	for e.pending > 0 {
		e.idle.Wait()
	}
	e.mu.Unlock()
}

func (e *Emitter) Close() {
	if e == nil {
		return
	}

	e.onceClose.Do(func() {
		e.mu.Lock()
		e.closed = true
		close(e.buf)
		e.mu.Unlock()

		e.wg.Wait()
	})
}

func (e *Emitter) done(n int) {
	e.mu.Lock()
	e.pending -= n
	if e.pending <= 0 {
		e.pending = 0
		e.idle.Broadcast()
	}
	e.mu.Unlock()
}

func (e *Emitter) insertMany(batch []models.ActivityEntry) {
	ctx, cancel := context.WithTimeout(
		context.Background(),
		2*time.Second,
	)
	defer cancel()

	docs := make([]any, len(batch))
	for i, entry := range batch {
		docs[i] = entry
	}

	if err := e.store.InsertMany(ctx, models.CollectionActivity, docs); err != nil {
		e.failures.Add(int64(len(batch)))
		logging.Logger.Warnf("Event ID: ACTIVITY_WRITE_FAILED, Description: dropped %d activity entries: %v", len(batch), err)
	}
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.ActivityEntry, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		e.insertMany(batch)
		e.done(len(batch))

		batch = batch[:0]
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case entry, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, entry)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-e.kick:
			// drain what is already queued so Flush sees it written
			for drained := false; !drained; {
				select {
				case entry, ok := <-e.buf:
					if !ok {
						flush()
						return
					}
					batch = append(batch, entry)
				default:
					drained = true
				}
			}
			flush()
		case <-timer.C:
			flush()
		}
	}
}
