package admin

import (
	"context"

	"county-portal-api/internal/geocode"
	"county-portal-api/internal/government"
)

type AdminServiceAPI interface {
	Backfill(ctx context.Context, kind string, onProgress func(geocode.Progress)) (geocode.Report, error)
	ExportCouncils(ctx context.Context, format string) (contentType, filename string, out []byte, err error)
}

type BackfillRunner interface {
	Backfill(ctx context.Context, store geocode.Store, onProgress func(geocode.Progress)) (geocode.Report, error)
}

type CouncilSource interface {
	AllCouncils(ctx context.Context) ([]government.CountyCouncil, []government.DistrictCouncil, []government.ParishCouncil, error)
}

var _ AdminServiceAPI = (*AdminService)(nil)
