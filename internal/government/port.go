package government

import (
	"context"

	"county-portal-api/internal/auth"
)

type GovernmentServiceAPI interface {
	Overview(ctx context.Context, county string) (*Overview, error)
	ListCouncils(ctx context.Context, kind Kind, county string) (any, error)
	CreateCouncil(ctx context.Context, rec Council, caller *auth.Identity, county string) error
	UpdateCouncil(ctx context.Context, kind Kind, id uint, patch Council, columns []string) (Council, error)
	DeleteCouncil(ctx context.Context, kind Kind, id uint) error
	Apply(ctx context.Context, req CommunityApplicationRequest, caller *auth.Identity, county string) (*CommunityApplication, error)
}

var _ GovernmentServiceAPI = (*GovernmentService)(nil)
