package events

import (
	"fmt"

	"admindash/internal/models"
)

func (e *Emitter) record(kind models.ActivityType, description, relatedID, actorID string) {
	e.Emit(models.ActivityEntry{
		Type:        kind,
		Description: description,
		RelatedID:   relatedID,
		UserID:      actorID,
	})
}

func (e *Emitter) UserRegistered(actorID string, user models.Identity) {
	e.record(models.ActivityUserRegistered, fmt.Sprintf("User %q registered", user.Email), user.ID, actorID)
}

func (e *Emitter) UserStatusChanged(actorID, userID string, isActive bool) {
	state := "deactivated"
	if isActive {
		state = "activated"
	}
	e.record(models.ActivityUserStatusChange, "User "+state, userID, actorID)
}

func (e *Emitter) UserRoleChanged(actorID, userID string, role models.Role) {
	e.record(models.ActivityRoleChange, "User role changed to "+role.String(), userID, actorID)
}

func (e *Emitter) UserProfileUpdated(actorID, userID string) {
	e.record(models.ActivityProfileUpdated, "User profile updated", userID, actorID)
}

func (e *Emitter) UserDeleted(actorID, userID string) {
	e.record(models.ActivityUserDeleted, "User deleted from system", userID, actorID)
}

func (e *Emitter) ProjectCreated(actorID string, project models.Project) {
	e.record(models.ActivityProjectCreated, fmt.Sprintf("Project %q created", project.Name), project.ID, actorID)
}

func (e *Emitter) ProjectUpdated(actorID, projectID string) {
	e.record(models.ActivityProjectUpdated, "Project updated", projectID, actorID)
}

func (e *Emitter) ProjectDeleted(actorID, projectID string) {
	e.record(models.ActivityProjectDeleted, "Project deleted", projectID, actorID)
}

func (e *Emitter) TaskCreated(actorID string, task models.Task) {
	e.record(models.ActivityTaskCreated, fmt.Sprintf("Task %q created", task.Title), task.ID, actorID)
}

func (e *Emitter) TaskUpdated(actorID, taskID string) {
	e.record(models.ActivityTaskUpdated, "Task updated", taskID, actorID)
}

func (e *Emitter) TaskStatusChanged(actorID, taskID string, status models.TaskStatus) {
	e.record(models.ActivityTaskStatusChange, "Task status changed to "+string(status), taskID, actorID)
}

func (e *Emitter) TaskAssigned(actorID, taskID string) {
	e.record(models.ActivityTaskAssigned, "Task assigned to user", taskID, actorID)
}

func (e *Emitter) TaskDeleted(actorID, taskID string) {
	e.record(models.ActivityTaskDeleted, "Task deleted", taskID, actorID)
}
