package auth

import (
	"errors"

	"github.com/Pruthvi98/klaw/internal/domain/user"
)

var ErrNotAuthorized = errors.New("not authorized to perform this operation")

// Permission is a coarse-grained capability resolved against the actor's
// role. Permissions gate entry points; environment visibility is enforced
// separately at query time.
type Permission string

const (
	PermRequestCreateSubscriptions Permission = "REQUEST_CREATE_SUBSCRIPTIONS"
	PermRequestCreateConnectors    Permission = "REQUEST_CREATE_CONNECTORS"
	PermApproveOperationalRequests Permission = "APPROVE_OPERATIONAL_REQS"
	PermApproveConnectors          Permission = "APPROVE_CONNECTORS"
)

var rolePermissions = map[user.Role]map[Permission]bool{
	user.RoleUser: {
		PermRequestCreateSubscriptions: true,
		PermRequestCreateConnectors:    true,
	},
	user.RoleApprover: {
		PermRequestCreateSubscriptions: true,
		PermRequestCreateConnectors:    true,
		PermApproveOperationalRequests: true,
		PermApproveConnectors:          true,
	},
	user.RoleSuperadmin: {
		PermRequestCreateSubscriptions: true,
		PermRequestCreateConnectors:    true,
		PermApproveOperationalRequests: true,
		PermApproveConnectors:          true,
	},
}

type Checker struct{}

func NewChecker() *Checker {
	return &Checker{}
}

func (c *Checker) IsAuthorized(role user.Role, permission Permission) bool {
	return rolePermissions[role][permission]
}

// Require fails closed: callers must invoke it before any collaborator call
// so an unauthorized request has zero side effects.
func (c *Checker) Require(role user.Role, permission Permission) error {
	if !c.IsAuthorized(role, permission) {
		return ErrNotAuthorized
	}
	return nil
}

// ApproverRoles lists the roles entitled to approve requests; used to build
// the approver info shown on pending requests.
func ApproverRoles() []user.Role {
	return []user.Role{user.RoleApprover, user.RoleSuperadmin}
}
