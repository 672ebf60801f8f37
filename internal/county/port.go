package county

import "context"

type CountyServiceAPI interface {
	List(ctx context.Context, search, country string) ([]County, error)
	Get(ctx context.Context, id uint) (*County, error)
	GetByName(ctx context.Context, name string) (*County, error)
	Create(ctx context.Context, req CreateCountyRequest) (*County, error)
	Update(ctx context.Context, id uint, patch *County, columns []string) (*County, error)
	Delete(ctx context.Context, id uint) error
}

var _ CountyServiceAPI = (*CountyService)(nil)
