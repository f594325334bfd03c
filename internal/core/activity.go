package core

import (
	"context"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/models"
)

type Activity struct {
	store backend.DocumentStore
}

// ActivityQuery returns the newest entries first. Without view_all_activity
// only the actor's own entries are visible.
func ActivityQuery(actor models.SessionIdentity, limit int) backend.Query {
	q := backend.Query{
		OrderBy:    "timestamp",
		Descending: true,
		Limit:      pageSize(limit, defaultRecordPage),
	}
	if user := access.ActivityScope(actor); user != "" {
		q.Filter = backend.Filter{"userId": user}
	}
	return q
}

func (s *Activity) List(ctx context.Context, actor models.SessionIdentity, limit int) ([]models.ActivityEntry, error) {
	if err := access.Require(actor, access.ViewOwnActivity); err != nil {
		return nil, err
	}

	entries := []models.ActivityEntry{}
	if err := s.store.Query(ctx, models.CollectionActivity, ActivityQuery(actor, limit), &entries); err != nil {
		return nil, errmsg.Transport(err)
	}
	return entries, nil
}

// Recent is the unscoped feed behind the dashboard statistics.
func (s *Activity) Recent(ctx context.Context, n int) ([]models.ActivityEntry, error) {
	entries := []models.ActivityEntry{}
	q := backend.Query{
		OrderBy:    "timestamp",
		Descending: true,
		Limit:      pageSize(n, models.RecentActivityLimit),
	}
	if err := s.store.Query(ctx, models.CollectionActivity, q, &entries); err != nil {
		return nil, errmsg.Transport(err)
	}
	return entries, nil
}
