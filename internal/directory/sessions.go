package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"admindash/internal/backend"

	"github.com/go-redis/redis/v8"
)

// RedisSessions keeps one key per session plus a set of session ids per
// principal. Removal is announced on a per-session pub/sub channel.
type RedisSessions struct {
	rdb *redis.Client
}

func NewRedisSessions(rdb *redis.Client) *RedisSessions {
	return &RedisSessions{rdb: rdb}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func principalKey(principalID string) string {
	return "principal:" + principalID + ":sessions"
}

func signOutChannel(sid string) string {
	return "session:" + sid + ":signout"
}

func (s *RedisSessions) Put(ctx context.Context, sid, principalID string, ttl time.Duration) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(sid), principalID, ttl)
	pipe.SAdd(ctx, principalKey(principalID), sid)
	if _, err := pipe.Exec(ctx); err != nil {
		return cacheError(err)
	}
	return nil
}

func (s *RedisSessions) Lookup(ctx context.Context, sid string) (string, error) {
	principalID, err := s.rdb.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		return "", cacheError(err)
	}
	return principalID, nil
}

func (s *RedisSessions) Remove(ctx context.Context, sid string) error {
	principalID, err := s.Lookup(ctx, sid)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(sid))
	pipe.SRem(ctx, principalKey(principalID), sid)
	pipe.Publish(ctx, signOutChannel(sid), principalID)
	if _, err := pipe.Exec(ctx); err != nil {
		return cacheError(err)
	}
	return nil
}

// SessionsOf also prunes ids whose session key already expired.
func (s *RedisSessions) SessionsOf(ctx context.Context, principalID string) ([]string, error) {
	sids, err := s.rdb.SMembers(ctx, principalKey(principalID)).Result()
	if err != nil {
		return nil, cacheError(err)
	}

	live := make([]string, 0, len(sids))
	for _, sid := range sids {
		n, err := s.rdb.Exists(ctx, sessionKey(sid)).Result()
		if err != nil {
			return nil, cacheError(err)
		}
		if n == 0 {
			s.rdb.SRem(ctx, principalKey(principalID), sid)
			continue
		}
		live = append(live, sid)
	}
	return live, nil
}

func (s *RedisSessions) Watch(ctx context.Context, sid string) (<-chan struct{}, func(), error) {
	pubsub := s.rdb.Subscribe(ctx, signOutChannel(sid))

	// Wait for the subscription to be confirmed so a removal right after
	// Watch returns is not missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, cacheError(err)
	}

	removed := make(chan struct{})
	go func() {
		msgs := pubsub.Channel()
		if _, ok := <-msgs; ok {
			close(removed)
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() { _ = pubsub.Close() })
	}
	return removed, stop, nil
}

func cacheError(err error) error {
	if errors.Is(err, redis.Nil) {
		return backend.ErrNotFound
	}
	return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
}

type memorySession struct {
	principalID string
	expires     time.Time
}

// MemorySessions is the in-process SessionStore.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	watchers map[string][]chan struct{}
	now      func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		sessions: make(map[string]memorySession),
		watchers: make(map[string][]chan struct{}),
		now:      time.Now,
	}
}

func (s *MemorySessions) Put(_ context.Context, sid, principalID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sid] = memorySession{principalID: principalID, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessions) Lookup(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.live(sid)
	if !ok {
		return "", backend.ErrNotFound
	}
	return sess.principalID, nil
}

// live must be called with mu held.
func (s *MemorySessions) live(sid string) (memorySession, bool) {
	sess, ok := s.sessions[sid]
	if !ok {
		return memorySession{}, false
	}
	if !s.now().Before(sess.expires) {
		delete(s.sessions, sid)
		return memorySession{}, false
	}
	return sess, true
}

func (s *MemorySessions) Remove(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(sid); !ok {
		return backend.ErrNotFound
	}
	delete(s.sessions, sid)

	for _, w := range s.watchers[sid] {
		close(w)
	}
	delete(s.watchers, sid)
	return nil
}

func (s *MemorySessions) SessionsOf(_ context.Context, principalID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sids []string
	for sid := range s.sessions {
		if sess, ok := s.live(sid); ok && sess.principalID == principalID {
			sids = append(sids, sid)
		}
	}
	return sids, nil
}

func (s *MemorySessions) Watch(_ context.Context, sid string) (<-chan struct{}, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := make(chan struct{})
	s.watchers[sid] = append(s.watchers[sid], w)

	stop := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		list := s.watchers[sid]
		for i, c := range list {
			if c == w {
				s.watchers[sid] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(s.watchers[sid]) == 0 {
			delete(s.watchers, sid)
		}
	}
	return w, stop, nil
}
