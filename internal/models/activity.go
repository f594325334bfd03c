package models

import "time"

type ActivityType string

const (
	ActivityUserRegistered   ActivityType = "user_registered"
	ActivityUserStatusChange ActivityType = "user_status_change"
	ActivityRoleChange       ActivityType = "role_change"
	ActivityProfileUpdated   ActivityType = "profile_updated"
	ActivityUserDeleted      ActivityType = "user_deleted"

	ActivityProjectCreated ActivityType = "project_created"
	ActivityProjectUpdated ActivityType = "project_updated"
	ActivityProjectDeleted ActivityType = "project_deleted"

	ActivityTaskCreated      ActivityType = "task_created"
	ActivityTaskUpdated      ActivityType = "task_updated"
	ActivityTaskStatusChange ActivityType = "task_status_change"
	ActivityTaskAssigned     ActivityType = "task_assigned"
	ActivityTaskDeleted      ActivityType = "task_deleted"
)

// ActivityEntry is one append-only audit record.
type ActivityEntry struct {
	ID          string       `bson:"id" json:"id"`
	Type        ActivityType `bson:"type" json:"type"`
	Description string       `bson:"description" json:"description"`
	RelatedID   string       `bson:"relatedId" json:"relatedId"`
	UserID      string       `bson:"userId" json:"userId"`
	Timestamp   time.Time    `bson:"timestamp" json:"timestamp"`
}
