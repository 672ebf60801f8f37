package heritage

import (
	"context"
	"strings"

	"county-portal-api/internal/access"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/listing"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HeritageService struct {
	DB *gorm.DB
}

func (s *HeritageService) repo() *entity.Repository[HeritageRecord] {
	return entity.NewRepository[HeritageRecord](s.DB)
}

// List returns a county's records, newest first. Category matching uses DisplayCategory,
// so "locations" also finds architecture records.
func (s *HeritageService) List(ctx context.Context, f ListFilter) ([]HeritageRecord, error) {
	records, err := s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": f.County},
		Sort:   "-created_at",
	})
	if err != nil {
		return nil, err
	}

	return listing.Filter(records, f.Category, f.Search,
		func(r HeritageRecord) string { return DisplayCategory(r.Category) },
		func(r HeritageRecord) string { return r.Title },
	), nil
}

func (s *HeritageService) Detail(ctx context.Context, id uint, caller *auth.Identity) (*RecordDetail, error) {
	rec, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &RecordDetail{HeritageRecord: *rec, CanModify: access.CanModify(caller, rec.CreatedBy)}, nil
}

// Create stores a record awaiting verification. Blank sources are dropped. When the request
// names no contributor the caller is credited.
func (s *HeritageService) Create(ctx context.Context, req CreateRecordRequest, caller *auth.Identity, county string) (*HeritageRecord, error) {
	if strings.TrimSpace(req.County) != "" {
		county = strings.TrimSpace(req.County)
	}

	rec := HeritageRecord{
		Title:            strings.TrimSpace(req.Title),
		Category:         req.Category,
		Description:      req.Description,
		TimePeriod:       req.TimePeriod,
		Sources:          datatypes.JSONSlice[string](CleanSources(req.Sources)),
		Contributor:      strings.TrimSpace(req.Contributor),
		ContributorEmail: strings.TrimSpace(req.ContributorEmail),
		Media:            datatypes.JSONSlice[MediaItem](nonNilMedia(req.Media)),
		Verified:         false,
		Status:           StatusPending,
		County:           county,
		CreatedBy:        caller.Email,
	}
	if rec.Contributor == "" {
		rec.Contributor = caller.FullName
	}
	if rec.ContributorEmail == "" {
		rec.ContributorEmail = caller.Email
	}

	if err := s.repo().Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *HeritageService) Update(ctx context.Context, id uint, patch *HeritageRecord, columns []string, caller *auth.Identity) (*HeritageRecord, error) {
	rec, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, rec.CreatedBy); err != nil {
		return nil, err
	}
	for _, c := range columns {
		if c == "sources" {
			patch.Sources = datatypes.JSONSlice[string](CleanSources(patch.Sources))
		}
	}
	return s.repo().Patch(ctx, id, patch, columns)
}

func (s *HeritageService) Delete(ctx context.Context, id uint, caller *auth.Identity) (*HeritageRecord, error) {
	rec, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, rec.CreatedBy); err != nil {
		return nil, err
	}
	if err := s.repo().Delete(ctx, id); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *HeritageService) Recent(ctx context.Context, county string, limit int) ([]HeritageRecord, error) {
	return s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": county},
		Sort:   "-created_at",
		Limit:  limit,
	})
}

// CleanSources trims each source and drops the blank ones, keeping order.
func CleanSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, src := range sources {
		if src = strings.TrimSpace(src); src != "" {
			out = append(out, src)
		}
	}
	return out
}

func nonNilMedia(m []MediaItem) []MediaItem {
	if m == nil {
		return []MediaItem{}
	}
	return m
}
