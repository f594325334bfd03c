package access

import (
	"admindash/internal/errmsg"
	"admindash/internal/models"
)

type Action string

const (
	ViewStats       Action = "view_stats"
	CreateProject   Action = "create_project"
	CreateTask      Action = "create_task"
	ViewOwnActivity Action = "view_own_activity"
	ViewUsers       Action = "view_users"
	ViewAllRecords  Action = "view_all_records"
	GenerateReport  Action = "generate_report"
	ManageUsers     Action = "manage_users"
	ViewAllActivity Action = "view_all_activity"
)

var rolePermissions = map[models.Role][]Action{
	models.RoleUser: {
		ViewStats, CreateProject, CreateTask, ViewOwnActivity,
	},
	models.RoleManager: {
		ViewStats, CreateProject, CreateTask, ViewOwnActivity,
		ViewUsers, ViewAllRecords, GenerateReport,
	},
	models.RoleAdmin: {
		ViewStats, CreateProject, CreateTask, ViewOwnActivity,
		ViewUsers, ViewAllRecords, GenerateReport,
		ManageUsers, ViewAllActivity,
	},
}

// Permit reports whether role grants action. Unknown roles are granted
// nothing.
func Permit(role models.Role, action Action) bool {
	for _, a := range rolePermissions[role] {
		if a == action {
			return true
		}
	}
	return false
}

// Require is Permit returning PermissionDenied instead of false.
func Require(actor models.SessionIdentity, action Action) error {
	if !Permit(actor.Role, action) {
		return errmsg.PermissionDenied
	}
	return nil
}

// Permissions lists everything role grants, in table order.
func Permissions(role models.Role) []Action {
	out := make([]Action, len(rolePermissions[role]))
	copy(out, rolePermissions[role])
	return out
}

// CanMutate is the ownership rule for projects and tasks.
func CanMutate(actor models.SessionIdentity, createdBy string) bool {
	return actor.ID != "" && actor.ID == createdBy
}

// CanChangeTaskStatus extends CanMutate to the task assignee.
func CanChangeTaskStatus(actor models.SessionIdentity, task models.Task) bool {
	return CanMutate(actor, task.CreatedBy) || (task.AssignedTo != "" && actor.ID == task.AssignedTo)
}

func CanUpdateProfile(actor models.SessionIdentity, principalID string) bool {
	return actor.ID == principalID || Permit(actor.Role, ManageUsers)
}

// OwnerScope returns the createdBy value a listing must be restricted to, or
// "" when the actor may see every record.
func OwnerScope(actor models.SessionIdentity) string {
	if Permit(actor.Role, ViewAllRecords) {
		return ""
	}
	return actor.ID
}

// ActivityScope is OwnerScope for the activity log.
func ActivityScope(actor models.SessionIdentity) string {
	if Permit(actor.Role, ViewAllActivity) {
		return ""
	}
	return actor.ID
}
