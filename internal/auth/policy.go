package auth

import "github.com/google/uuid"

// Identity is the authenticated actor attached to a request after token
// verification.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type Action string

const (
	ActionTaskCreate       Action = "task:create"
	ActionTaskRead         Action = "task:read"
	ActionTaskUpdate       Action = "task:update"
	ActionTaskDelete       Action = "task:delete"
	ActionTaskList         Action = "task:list"
	ActionTaskListAll      Action = "task:list_all"
	ActionTaskExport       Action = "task:export"
	ActionDepartmentRead   Action = "department:read"
	ActionDepartmentManage Action = "department:manage"
)

// Resource identifies the target of an action. For task actions OwnerID is
// the owning employee; department actions carry no owner.
type Resource struct {
	OwnerID uuid.UUID
}

// Can is the single authorization decision point. Admins see everything and
// manage departments; task mutations pass for admin or owner; employees
// otherwise act only on their own tasks. Department reads are open to any
// actor so the registration and filter UIs can populate.
func Can(actor Identity, action Action, res Resource) bool {
	switch action {
	case ActionDepartmentRead:
		return true
	case ActionDepartmentManage, ActionTaskListAll, ActionTaskExport:
		return actor.IsAdmin()
	case ActionTaskCreate, ActionTaskRead, ActionTaskUpdate, ActionTaskDelete, ActionTaskList:
		if actor.IsAdmin() {
			return true
		}
		return actor.UserID != uuid.Nil && actor.UserID == res.OwnerID
	default:
		return false
	}
}
