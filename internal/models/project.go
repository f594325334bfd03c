package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// DeadlineLayout is the calendar date format used for project deadlines.
const DeadlineLayout = "2006-01-02"

type Project struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Deadline    string        `bson:"deadline" json:"deadline"`
	CreatedBy   string        `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time    `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Status      ProjectStatus `bson:"status" json:"status"`
	Progress    int           `bson:"progress" json:"progress"`
}

type ProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// ProjectPatch carries only the fields a caller wants to change.
type ProjectPatch struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Deadline    *string        `json:"deadline,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Progress    *int           `json:"progress,omitempty"`
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}
