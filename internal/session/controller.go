// Package session tracks whether a bearer token still represents a signed-in
// identity, driven only by the Directory's identity-change stream.
package session

import (
	"context"
	"sync"

	"admindash/internal/backend"
	"admindash/internal/logging"
	"admindash/internal/models"
)

type Status string

const (
	Loading         Status = "loading"
	Authenticated   Status = "authenticated"
	Unauthenticated Status = "unauthenticated"
)

type State struct {
	Status  Status           `json:"status"`
	Profile *models.Identity `json:"profile,omitempty"`
}

// ProfileSource loads the directory profile of a principal.
type ProfileSource interface {
	Get(ctx context.Context, collection, id string, out any) error
}

type Controller struct {
	dir      backend.Directory
	profiles ProfileSource
	token    string

	mu      sync.RWMutex
	current State
	changes chan State

	watch    *backend.IdentityWatch
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

func New(dir backend.Directory, profiles ProfileSource, token string) *Controller {
	return &Controller{
		dir:      dir,
		profiles: profiles,
		token:    token,
		current:  State{Status: Loading},
		changes:  make(chan State, 8),
		done:     make(chan struct{}),
	}
}

// Start subscribes to the identity stream. Transitions are applied until Stop
// is called or ctx ends.
func (c *Controller) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	watch, err := c.dir.OnIdentityChange(ctx, c.token)
	if err != nil {
		cancel()
		return err
	}

	c.watch = watch
	c.cancel = cancel

	go c.run(ctx)
	return nil
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)
	defer close(c.changes)

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-c.watch.C:
			if !ok {
				return
			}
			c.apply(ctx, change)
		}
	}
}

func (c *Controller) apply(ctx context.Context, change backend.IdentityChange) {
	if change.Principal == nil {
		c.set(State{Status: Unauthenticated})
		return
	}

	principal := *change.Principal

	var profile models.Identity
	if err := c.profiles.Get(ctx, models.CollectionUsers, principal.ID, &profile); err != nil {
		logging.Logger.Warnf("Event ID: PROFILE_FALLBACK, Description: profile of %s unavailable: %v", principal.ID, err)
		profile = models.Identity{
			ID:    principal.ID,
			Email: principal.Email,
			Role:  models.RoleUser,
		}
	}

	c.set(State{Status: Authenticated, Profile: &profile})
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()

	for {
		select {
		case c.changes <- s:
			return
		default:
		}
		select {
		case <-c.changes:
		default:
		}
	}
}

func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// Changes delivers transitions in order, dropping the oldest when the
// observer lags. It is closed after Stop.
func (c *Controller) Changes() <-chan State {
	return c.changes
}

// Logout asks the Directory to end the session. The state flips to
// Unauthenticated when the stream reports it.
func (c *Controller) Logout(ctx context.Context) error {
	return c.dir.SignOut(ctx, c.token)
}

// Stop releases the identity watch. Only the first call has an effect.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		if c.watch == nil {
			close(c.changes)
			return
		}
		c.cancel()
		c.watch.Close()
		<-c.done
	})
}
