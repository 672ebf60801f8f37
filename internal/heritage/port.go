package heritage

import (
	"context"

	"county-portal-api/internal/auth"
)

type HeritageServiceAPI interface {
	List(ctx context.Context, f ListFilter) ([]HeritageRecord, error)
	Detail(ctx context.Context, id uint, caller *auth.Identity) (*RecordDetail, error)
	Create(ctx context.Context, req CreateRecordRequest, caller *auth.Identity, county string) (*HeritageRecord, error)
	Update(ctx context.Context, id uint, patch *HeritageRecord, columns []string, caller *auth.Identity) (*HeritageRecord, error)
	Delete(ctx context.Context, id uint, caller *auth.Identity) (*HeritageRecord, error)
}

var _ HeritageServiceAPI = (*HeritageService)(nil)
