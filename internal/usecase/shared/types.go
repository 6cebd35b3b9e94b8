package shared

import (
	"resource-desk/internal/domain/user"
)

// Actor identifies the authenticated caller of a command.
type Actor struct {
	UserID int64
	Email  string
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
