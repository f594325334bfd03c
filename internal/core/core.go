// Package core holds the record services. Every operation takes the acting
// session identity, checks it against the access rules, talks to the
// collaborators and reports failures as errmsg.StatusError values.
package core

import (
	"errors"
	"time"

	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/events"
)

const (
	defaultUserPage   = 10
	defaultRecordPage = 50
	maxPage           = 100
)

var errCursor = errmsg.Validation("after does not reference an existing record")

type Services struct {
	Users    *Users
	Projects *Projects
	Tasks    *Tasks
	Activity *Activity
	Stats    *Stats
	Reports  *Reports
}

func New(dir backend.Directory, store backend.DocumentStore, em *events.Emitter) *Services {
	projects := &Projects{store: store, em: em}
	activity := &Activity{store: store}

	return &Services{
		Users:    &Users{dir: dir, store: store, em: em},
		Projects: projects,
		Tasks:    &Tasks{store: store, em: em, projects: projects},
		Activity: activity,
		Stats:    &Stats{store: store, activity: activity},
		Reports:  &Reports{store: store},
	}
}

// storeError maps a collaborator error onto the service taxonomy.
func storeError(err error, notFound errmsg.StatusError) error {
	if err == nil {
		return nil
	}

	var se errmsg.StatusError
	if errors.As(err, &se) {
		return se
	}
	if errors.Is(err, backend.ErrNotFound) {
		return notFound
	}
	return errmsg.Transport(err)
}

func pageSize(requested, def int) int64 {
	switch {
	case requested <= 0:
		return int64(def)
	case requested > maxPage:
		return maxPage
	}
	return int64(requested)
}

func now() time.Time {
	return time.Now().UTC()
}
