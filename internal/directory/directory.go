// Package directory is the managed-user Directory: password credentials,
// bearer sessions and the per-session identity-change stream.
package directory

import (
	"context"
	"errors"
	"strings"
	"time"

	"admindash/internal/backend"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Credential struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type CredentialStore interface {
	Create(ctx context.Context, cred Credential) error
	ByEmail(ctx context.Context, email string) (Credential, error)
	ByID(ctx context.Context, id string) (Credential, error)
	Delete(ctx context.Context, id string) error
}

type SessionStore interface {
	Put(ctx context.Context, sid, principalID string, ttl time.Duration) error
	Lookup(ctx context.Context, sid string) (string, error)
	Remove(ctx context.Context, sid string) error
	SessionsOf(ctx context.Context, principalID string) ([]string, error)
	// Watch fires once when sid is removed. stop releases the watch.
	Watch(ctx context.Context, sid string) (removed <-chan struct{}, stop func(), err error)
}

type Directory struct {
	creds    CredentialStore
	sessions SessionStore
	secret   []byte
	ttl      time.Duration

	// Cost is the bcrypt cost used for new credentials.
	Cost int
}

func New(creds CredentialStore, sessions SessionStore, secret []byte, ttl time.Duration) *Directory {
	return &Directory{
		creds:    creds,
		sessions: sessions,
		secret:   secret,
		ttl:      ttl,
		Cost:     bcrypt.DefaultCost,
	}
}

// NewMemory builds a Directory that keeps everything in process.
func NewMemory(secret []byte) *Directory {
	d := New(NewMemoryCredentials(), NewMemorySessions(), secret, time.Hour)
	d.Cost = bcrypt.MinCost
	return d
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *Directory) VerifyCredential(ctx context.Context, email, password string) (string, error) {
	cred, err := d.creds.ByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, backend.ErrNotFound) {
		return "", backend.ErrInvalidCredential
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", backend.ErrInvalidCredential
	}
	return cred.ID, nil
}

func (d *Directory) CreateCredential(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.Cost)
	if err != nil {
		return "", err
	}

	cred := Credential{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := d.creds.Create(ctx, cred); err != nil {
		return "", err
	}
	return cred.ID, nil
}

func (d *Directory) DeleteCredential(ctx context.Context, principalID string) error {
	return d.creds.Delete(ctx, principalID)
}

func (d *Directory) Principal(ctx context.Context, principalID string) (backend.Principal, error) {
	cred, err := d.creds.ByID(ctx, principalID)
	if err != nil {
		return backend.Principal{}, err
	}
	return backend.Principal{ID: cred.ID, Email: cred.Email}, nil
}

func (d *Directory) OpenSession(ctx context.Context, principalID string) (string, error) {
	sid := uuid.NewString()
	if err := d.sessions.Put(ctx, sid, principalID, d.ttl); err != nil {
		return "", err
	}
	return generateToken(d.secret, sid, principalID, d.ttl), nil
}

// ResolveSession returns the principal behind a token whose session is still
// registered. Revoked, expired and forged tokens all yield ErrNotFound.
func (d *Directory) ResolveSession(ctx context.Context, token string) (string, error) {
	claims, err := parseToken(d.secret, token)
	if err != nil {
		return "", backend.ErrNotFound
	}

	principalID, err := d.sessions.Lookup(ctx, claims.SessionID)
	if err != nil {
		return "", err
	}
	if principalID != claims.PrincipalID {
		return "", backend.ErrNotFound
	}
	return principalID, nil
}

func (d *Directory) SignOut(ctx context.Context, token string) error {
	claims, err := parseToken(d.secret, token)
	if err != nil {
		return nil
	}

	err = d.sessions.Remove(ctx, claims.SessionID)
	if errors.Is(err, backend.ErrNotFound) {
		return nil
	}
	return err
}

func (d *Directory) RevokePrincipal(ctx context.Context, principalID string) error {
	sids, err := d.sessions.SessionsOf(ctx, principalID)
	if err != nil {
		return err
	}

	for _, sid := range sids {
		if err := d.sessions.Remove(ctx, sid); err != nil && !errors.Is(err, backend.ErrNotFound) {
			return err
		}
	}
	return nil
}

func (d *Directory) OnIdentityChange(ctx context.Context, token string) (*backend.IdentityWatch, error) {
	ch := make(chan backend.IdentityChange, 2)

	claims, err := parseToken(d.secret, token)
	if err != nil {
		ch <- backend.IdentityChange{}
		close(ch)
		return backend.NewIdentityWatch(ch, nil), nil
	}

	removed, stopWatch, err := d.sessions.Watch(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}

	principalID, err := d.sessions.Lookup(ctx, claims.SessionID)
	if errors.Is(err, backend.ErrNotFound) || (err == nil && principalID != claims.PrincipalID) {
		stopWatch()
		ch <- backend.IdentityChange{}
		close(ch)
		return backend.NewIdentityWatch(ch, nil), nil
	}
	if err != nil {
		stopWatch()
		return nil, err
	}

	principal, err := d.Principal(ctx, principalID)
	if err != nil {
		// The credential is gone but the session is live; report the id only.
		principal = backend.Principal{ID: principalID}
	}

	ch <- backend.IdentityChange{Principal: &principal}

	done := make(chan struct{})
	go func() {
		defer close(ch)
		select {
		case <-removed:
			ch <- backend.IdentityChange{}
		case <-done:
		}
	}()

	return backend.NewIdentityWatch(ch, func() {
		close(done)
		stopWatch()
	}), nil
}
