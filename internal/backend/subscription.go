package backend

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Snapshot is the full, ordered result of a live query at one point in time.
type Snapshot struct {
	Collection string
	Docs       []bson.M
	At         time.Time
}

// Decode converts the snapshot documents into out, a pointer to a slice of
// records.
func (s Snapshot) Decode(out any) error {
	return DecodeDocs(s.Docs, out)
}

// Subscription is a live query handle. The owner must Close it; Close is safe
// to call more than once but only releases the query the first time.
type Subscription struct {
	C <-chan Snapshot

	stop func()
	once sync.Once
}

func NewSubscription(c <-chan Snapshot, stop func()) *Subscription {
	return &Subscription{C: c, stop: stop}
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		if s.stop != nil {
			s.stop()
		}
	})
}

// IdentityWatch is the subscription handle for a Directory identity stream.
type IdentityWatch struct {
	C <-chan IdentityChange

	stop func()
	once sync.Once
}

func NewIdentityWatch(c <-chan IdentityChange, stop func()) *IdentityWatch {
	return &IdentityWatch{C: c, stop: stop}
}

func (w *IdentityWatch) Close() {
	w.once.Do(func() {
		if w.stop != nil {
			w.stop()
		}
	})
}

// Offer delivers s on a one-slot channel, replacing an undelivered older
// snapshot so a slow consumer always sees the latest state.
func Offer(ch chan Snapshot, s Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
