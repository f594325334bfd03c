package models

import "time"

const RecentActivityLimit = 10

type Stats struct {
	TotalUsers     int             `json:"totalUsers"`
	ActiveUsers    int             `json:"activeUsers"`
	TotalProjects  int             `json:"totalProjects"`
	CompletedTasks int             `json:"completedTasks"`
	PendingTasks   int             `json:"pendingTasks"`
	RecentActivity []ActivityEntry `json:"recentActivity"`
}

type ReportType string

const (
	ReportUserActivity    ReportType = "user_activity"
	ReportProjectProgress ReportType = "project_progress"
	ReportTaskCompletion  ReportType = "task_completion"
)

// DateRange bounds a report by record creation time. Nil ends are open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

type Report struct {
	Type        ReportType     `json:"type"`
	DateRange   DateRange      `json:"dateRange"`
	GeneratedAt time.Time      `json:"generatedAt"`
	GeneratedBy string         `json:"generatedBy"`
	Data        map[string]int `json:"data"`
}
