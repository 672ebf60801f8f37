package militia

import (
	"context"

	"county-portal-api/internal/auth"
)

type MilitiaServiceAPI interface {
	Apply(ctx context.Context, req ApplyRequest, caller *auth.Identity, county string) (*Application, error)
	Mine(ctx context.Context, caller *auth.Identity) ([]Application, error)
}

var _ MilitiaServiceAPI = (*MilitiaService)(nil)
