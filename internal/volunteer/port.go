package volunteer

import (
	"context"

	"county-portal-api/internal/auth"
)

type VolunteerServiceAPI interface {
	List(ctx context.Context, f ListFilter) ([]Service, error)
	Detail(ctx context.Context, id uint, caller *auth.Identity) (*ServiceDetail, error)
	Create(ctx context.Context, req CreateServiceRequest, caller *auth.Identity, county string) (*Service, error)
	Update(ctx context.Context, id uint, patch *Service, columns []string, caller *auth.Identity) (*Service, error)
	Delete(ctx context.Context, id uint, caller *auth.Identity) (*Service, error)
	Apply(ctx context.Context, serviceID uint, req ApplyRequest, caller *auth.Identity) (*Application, error)
}

var _ VolunteerServiceAPI = (*VolunteerService)(nil)
