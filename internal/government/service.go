package government

import (
	"context"
	"strings"

	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/event"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserLister interface {
	UsersByCounty(ctx context.Context, county string) ([]auth.User, error)
}

type EventLister interface {
	CommunityService(ctx context.Context, county string) ([]event.Event, error)
}

type GovernmentService struct {
	DB     *gorm.DB
	Users  UserLister
	Events EventLister
}

// Overview loads the five lists of the government page concurrently. Any failure fails
// the whole overview.
func (s *GovernmentService) Overview(ctx context.Context, county string) (*Overview, error) {
	var (
		users     []auth.User
		events    []event.Event
		counties  []CountyCouncil
		districts []DistrictCouncil
		parishes  []ParishCouncil
	)

	g, gctx := errgroup.WithContext(ctx)
	byCounty := entity.Query{Fields: map[string]any{"county": county}}

	g.Go(func() (err error) {
		users, err = s.Users.UsersByCounty(gctx, county)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.Events.CommunityService(gctx, county)
		return err
	})
	g.Go(func() (err error) {
		counties, err = entity.NewRepository[CountyCouncil](s.DB).Filter(gctx, byCounty)
		return err
	})
	g.Go(func() (err error) {
		districts, err = entity.NewRepository[DistrictCouncil](s.DB).Filter(gctx, byCounty)
		return err
	})
	g.Go(func() (err error) {
		parishes, err = entity.NewRepository[ParishCouncil](s.DB).Filter(gctx, byCounty)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buildOverview(county, users, events, counties, districts, parishes), nil
}

// ListCouncils returns the councils of one kind in a county.
func (s *GovernmentService) ListCouncils(ctx context.Context, kind Kind, county string) (any, error) {
	q := entity.Query{Fields: map[string]any{"county": county}, Sort: "name"}
	switch kind {
	case KindCounty:
		return entity.NewRepository[CountyCouncil](s.DB).Filter(ctx, q)
	case KindDistrict:
		return entity.NewRepository[DistrictCouncil](s.DB).Filter(ctx, q)
	case KindParish:
		return entity.NewRepository[ParishCouncil](s.DB).Filter(ctx, q)
	default:
		return nil, ErrUnknownKind
	}
}

// CreateCouncil stores rec, a pointer returned by NewCouncil, attributed to caller.
func (s *GovernmentService) CreateCouncil(ctx context.Context, rec Council, caller *auth.Identity, county string) error {
	base := rec.Base()
	base.ID = 0
	base.Name = strings.TrimSpace(base.Name)
	if strings.TrimSpace(base.County) == "" {
		base.County = county
	}
	base.KeyServices = nonNil(base.KeyServices)
	base.KeyResponsibilities = nonNil(base.KeyResponsibilities)
	base.LocalServices = nonNil(base.LocalServices)
	if caller != nil {
		base.CreatedBy = caller.Email
	}

	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return entity.Translate(err)
	}
	return nil
}

// UpdateCouncil writes the named columns of patch onto council id of kind and returns it.
func (s *GovernmentService) UpdateCouncil(ctx context.Context, kind Kind, id uint, patch Council, columns []string) (Council, error) {
	current, _, err := NewCouncil(kind)
	if err != nil {
		return nil, err
	}
	if err := s.first(ctx, current, id); err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := s.DB.WithContext(ctx).Model(current).Select(columns).Updates(patch).Error; err != nil {
			return nil, entity.Translate(err)
		}
	}
	if err := s.first(ctx, current, id); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *GovernmentService) DeleteCouncil(ctx context.Context, kind Kind, id uint) error {
	rec, _, err := NewCouncil(kind)
	if err != nil {
		return err
	}
	res := s.DB.WithContext(ctx).Delete(rec, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Apply records a community application with status pending.
func (s *GovernmentService) Apply(ctx context.Context, req CommunityApplicationRequest, caller *auth.Identity, county string) (*CommunityApplication, error) {
	if strings.TrimSpace(req.County) != "" {
		county = strings.TrimSpace(req.County)
	}
	app := CommunityApplication{
		ApplicantName:     strings.TrimSpace(req.ApplicantName),
		ApplicantEmail:    strings.ToLower(strings.TrimSpace(req.ApplicantEmail)),
		OrganisationLevel: req.OrganisationLevel,
		PreferredArea:     req.PreferredArea,
		SkillsExperience:  req.SkillsExperience,
		Motivation:        req.Motivation,
		Availability:      req.Availability,
		EmergencyContact:  req.EmergencyContact,
		Notes:             req.Notes,
		County:            county,
		Status:            StatusPending,
	}
	if caller != nil {
		app.CreatedBy = caller.Email
	}
	if err := entity.NewRepository[CommunityApplication](s.DB).Create(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// AllCouncils returns every council of every kind, for export.
func (s *GovernmentService) AllCouncils(ctx context.Context) ([]CountyCouncil, []DistrictCouncil, []ParishCouncil, error) {
	q := entity.Query{Sort: "county"}
	counties, err := entity.NewRepository[CountyCouncil](s.DB).Filter(ctx, q)
	if err != nil {
		return nil, nil, nil, err
	}
	districts, err := entity.NewRepository[DistrictCouncil](s.DB).Filter(ctx, q)
	if err != nil {
		return nil, nil, nil, err
	}
	parishes, err := entity.NewRepository[ParishCouncil](s.DB).Filter(ctx, q)
	if err != nil {
		return nil, nil, nil, err
	}
	return counties, districts, parishes, nil
}

func (s *GovernmentService) first(ctx context.Context, rec Council, id uint) error {
	res := s.DB.WithContext(ctx).Limit(1).Find(rec, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func nonNil(v datatypes.JSONSlice[string]) datatypes.JSONSlice[string] {
	if v == nil {
		return datatypes.JSONSlice[string]{}
	}
	return v
}
