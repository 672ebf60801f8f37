package role

import (
	"context"
	"errors"
	"strings"

	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"

	"gorm.io/gorm"
)

var ErrUnknownRole = errors.New("unknown role")

type RoleService struct {
	DB *gorm.DB
}

func (s *RoleService) GetAllRoles() []Role {
	out := make([]Role, len(catalog))
	copy(out, catalog)
	return out
}

// Assign sets the role of user id and optionally its county.
func (s *RoleService) Assign(ctx context.Context, id uint, req AssignRequest) (*auth.User, error) {
	if !auth.ValidRole(req.Role) {
		return nil, ErrUnknownRole
	}

	fields := map[string]any{"role": req.Role}
	if req.County != nil {
		fields["county"] = strings.TrimSpace(*req.County)
	}
	return entity.NewRepository[auth.User](s.DB).Update(ctx, id, fields)
}
