package core

import (
	"context"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/models"
)

type Stats struct {
	store    backend.DocumentStore
	activity *Activity
}

// ExcludeSystemAccounts reports whether an identity counts towards the user
// totals. The seeded service administrator does not.
func ExcludeSystemAccounts(u models.Identity) bool {
	return !u.System
}

// Compute scans the collections on every call; nothing is cached.
func (s *Stats) Compute(ctx context.Context, actor models.SessionIdentity) (models.Stats, error) {
	if err := access.Require(actor, access.ViewStats); err != nil {
		return models.Stats{}, err
	}

	var users []models.Identity
	if err := s.store.Query(ctx, models.CollectionUsers, backend.Query{}, &users); err != nil {
		return models.Stats{}, errmsg.Transport(err)
	}

	stats := models.Stats{}
	for _, u := range users {
		if !ExcludeSystemAccounts(u) {
			continue
		}
		stats.TotalUsers++
		if u.IsActive {
			stats.ActiveUsers++
		}
	}

	counts := []struct {
		collection string
		filter     backend.Filter
		dst        *int
	}{
		{models.CollectionProjects, nil, &stats.TotalProjects},
		{models.CollectionTasks, backend.Filter{"status": models.TaskStatusCompleted}, &stats.CompletedTasks},
		{models.CollectionTasks, backend.Filter{"status": models.TaskStatusPending}, &stats.PendingTasks},
	}
	for _, c := range counts {
		n, err := s.store.Count(ctx, c.collection, c.filter)
		if err != nil {
			return models.Stats{}, errmsg.Transport(err)
		}
		*c.dst = int(n)
	}

	recent, err := s.activity.Recent(ctx, models.RecentActivityLimit)
	if err != nil {
		return models.Stats{}, err
	}
	stats.RecentActivity = recent

	return stats, nil
}
