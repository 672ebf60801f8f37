package role

import (
	"context"

	"county-portal-api/internal/auth"
)

type RoleServiceAPI interface {
	GetAllRoles() []Role
	Assign(ctx context.Context, id uint, req AssignRequest) (*auth.User, error)
}

var _ RoleServiceAPI = (*RoleService)(nil)
