// Package backend declares the narrow request/response boundary to the hosted
// collaborators: the Directory (credentials and sessions) and the Document
// Store (record collections and live queries). Everything above this package
// talks to those two interfaces only.
package backend

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record, credential or session is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredential is returned on an email/password mismatch.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrDuplicate is returned when a unique key (credential email) is taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrUnavailable wraps failures reaching the collaborator itself.
	ErrUnavailable = errors.New("backend unavailable")
)

// Principal is the Directory's view of an authenticated identity.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// IdentityChange is one notification on a session's identity stream. A nil
// Principal means the session is signed out.
type IdentityChange struct {
	Principal *Principal
}

type Directory interface {
	VerifyCredential(ctx context.Context, email, password string) (string, error)
	CreateCredential(ctx context.Context, email, password string) (string, error)
	DeleteCredential(ctx context.Context, principalID string) error
	Principal(ctx context.Context, principalID string) (Principal, error)

	OpenSession(ctx context.Context, principalID string) (string, error)
	ResolveSession(ctx context.Context, token string) (string, error)
	SignOut(ctx context.Context, token string) error
	RevokePrincipal(ctx context.Context, principalID string) error

	// OnIdentityChange reports the session's current identity first, then
	// every later change until the watch is closed.
	OnIdentityChange(ctx context.Context, token string) (*IdentityWatch, error)
}

// Filter is an equality match on top-level document fields.
type Filter map[string]any

// Patch is a set of top-level fields to overwrite.
type Patch map[string]any

type Query struct {
	Filter     Filter
	OrderBy    string
	Descending bool
	Limit      int64
	// After is the id of the last document of the previous page.
	After string
}

type DocumentStore interface {
	Get(ctx context.Context, collection, id string, out any) error
	Query(ctx context.Context, collection string, q Query, out any) error
	Insert(ctx context.Context, collection string, doc any) (string, error)
	InsertMany(ctx context.Context, collection string, docs []any) error
	Update(ctx context.Context, collection, id string, patch Patch) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
	Subscribe(ctx context.Context, collection string, q Query) (*Subscription, error)
}
