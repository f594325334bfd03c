package core

import (
	"context"
	"time"

	"admindash/internal/access"
	"admindash/internal/backend"
	"admindash/internal/errmsg"
	"admindash/internal/models"
)

type ReportRequest struct {
	Type      models.ReportType `json:"type"`
	DateRange models.DateRange  `json:"dateRange"`
}

type Reports struct {
	store backend.DocumentStore
}

// Generate produces simple counts. Records are filtered by creation time
// except for the user totals, which always cover every account.
func (s *Reports) Generate(ctx context.Context, actor models.SessionIdentity, req ReportRequest) (models.Report, error) {
	if err := access.Require(actor, access.GenerateReport); err != nil {
		return models.Report{}, err
	}
	if r := req.DateRange; r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return models.Report{}, errmsg.Validation("dateRange.to must not precede dateRange.from")
	}

	var (
		data map[string]int
		err  error
	)
	switch req.Type {
	case models.ReportUserActivity:
		data, err = s.userActivity(ctx, req.DateRange)
	case models.ReportProjectProgress:
		data, err = s.projectProgress(ctx, req.DateRange)
	case models.ReportTaskCompletion:
		data, err = s.taskCompletion(ctx, req.DateRange)
	default:
		return models.Report{}, errmsg.InvalidReportType
	}
	if err != nil {
		return models.Report{}, errmsg.Transport(err)
	}

	return models.Report{
		Type:        req.Type,
		DateRange:   req.DateRange,
		GeneratedAt: now(),
		GeneratedBy: actor.ID,
		Data:        data,
	}, nil
}

func (s *Reports) userActivity(ctx context.Context, r models.DateRange) (map[string]int, error) {
	var users []models.Identity
	if err := s.store.Query(ctx, models.CollectionUsers, backend.Query{}, &users); err != nil {
		return nil, err
	}

	data := map[string]int{"totalUsers": 0, "activeUsers": 0, "newUsers": 0}
	for _, u := range users {
		if !ExcludeSystemAccounts(u) {
			continue
		}
		data["totalUsers"]++
		if u.IsActive {
			data["activeUsers"]++
		}
		if r.Contains(u.CreatedAt) {
			data["newUsers"]++
		}
	}
	return data, nil
}

func (s *Reports) projectProgress(ctx context.Context, r models.DateRange) (map[string]int, error) {
	var projects []models.Project
	if err := s.store.Query(ctx, models.CollectionProjects, backend.Query{}, &projects); err != nil {
		return nil, err
	}

	data := map[string]int{"totalProjects": 0, "completedProjects": 0, "activeProjects": 0}
	for _, p := range projects {
		if !r.Contains(p.CreatedAt) {
			continue
		}
		data["totalProjects"]++
		switch p.Status {
		case models.ProjectStatusCompleted:
			data["completedProjects"]++
		case models.ProjectStatusActive:
			data["activeProjects"]++
		}
	}
	return data, nil
}

func (s *Reports) taskCompletion(ctx context.Context, r models.DateRange) (map[string]int, error) {
	var tasks []models.Task
	if err := s.store.Query(ctx, models.CollectionTasks, backend.Query{}, &tasks); err != nil {
		return nil, err
	}

	data := map[string]int{"totalTasks": 0, "completedTasks": 0, "pendingTasks": 0}
	for _, t := range tasks {
		if !r.Contains(t.CreatedAt) {
			continue
		}
		data["totalTasks"]++
		switch t.Status {
		case models.TaskStatusCompleted:
			data["completedTasks"]++
		case models.TaskStatusPending:
			data["pendingTasks"]++
		}
	}
	return data, nil
}

// ParseDateRange reads optional RFC 3339 or YYYY-MM-DD bounds.
func ParseDateRange(from, to string) (models.DateRange, error) {
	var r models.DateRange
	for _, b := range []struct {
		raw string
		dst **time.Time
	}{{from, &r.From}, {to, &r.To}} {
		if b.raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, b.raw)
		if err != nil {
			t, err = time.Parse(models.DeadlineLayout, b.raw)
		}
		if err != nil {
			return models.DateRange{}, errmsg.Validation("dates must be RFC 3339 or YYYY-MM-DD")
		}
		*b.dst = &t
	}
	return r, nil
}
