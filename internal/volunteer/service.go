package volunteer

import (
	"context"
	"errors"
	"strings"

	"county-portal-api/internal/access"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"
	"county-portal-api/internal/geocode"
	"county-portal-api/internal/listing"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrAlreadyApplied = errors.New("you have already applied for this service")

// Enricher fills in coordinates for a single record.
type Enricher interface {
	Enrich(ctx context.Context, store geocode.Store, t geocode.Target) (geocode.Outcome, *geocode.Coordinates, error)
}

type VolunteerService struct {
	DB *gorm.DB
	// Geocode is optional; without it detail views never look up coordinates.
	Geocode Enricher
}

func (s *VolunteerService) repo() *entity.Repository[Service] {
	return entity.NewRepository[Service](s.DB)
}

// List returns a county's services, newest first, searching name and description.
func (s *VolunteerService) List(ctx context.Context, f ListFilter) ([]Service, error) {
	services, err := s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": f.County},
		Sort:   "-created_at",
	})
	if err != nil {
		return nil, err
	}

	return listing.Filter(services, f.Category, f.Search,
		func(v Service) string { return v.Category },
		func(v Service) string { return v.Name },
		func(v Service) string { return v.Description },
	), nil
}

// Detail loads a service for caller. A service with a location but no coordinates is
// geocoded on the way out; a failed lookup is logged and the detail returned as stored.
func (s *VolunteerService) Detail(ctx context.Context, id uint, caller *auth.Identity) (*ServiceDetail, error) {
	svc, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Geocode != nil && (svc.Latitude == nil || svc.Longitude == nil) && strings.TrimSpace(svc.Location) != "" {
		s.enrich(ctx, svc)
	}

	detail := &ServiceDetail{
		Service:   *svc,
		CanModify: access.CanModify(caller, svc.CreatedBy),
	}

	db := s.DB.WithContext(ctx)
	if err := db.Model(&Application{}).Where("service_id = ?", id).Count(&detail.ApplicationCount).Error; err != nil {
		return nil, err
	}

	if caller != nil {
		app, err := s.findApplication(db, id, caller.Email)
		if err != nil {
			return nil, err
		}
		detail.UserApplication = app
	}
	return detail, nil
}

func (s *VolunteerService) enrich(ctx context.Context, svc *Service) {
	outcome, coords, err := s.Geocode.Enrich(ctx, GeocodeStore{DB: s.DB}, geocode.Target{
		ID:        svc.ID,
		Title:     svc.Name,
		Location:  svc.Location,
		County:    svc.County,
		Latitude:  svc.Latitude,
		Longitude: svc.Longitude,
	})
	if err != nil {
		zap.L().Warn("volunteer service geocode failed",
			zap.Uint("service_id", svc.ID),
			zap.String("outcome", string(outcome)),
			zap.Error(err))
		return
	}
	if coords != nil {
		lat, lng := coords.Latitude, coords.Longitude
		svc.Latitude, svc.Longitude = &lat, &lng
	}
}

func (s *VolunteerService) Create(ctx context.Context, req CreateServiceRequest, caller *auth.Identity, county string) (*Service, error) {
	if strings.TrimSpace(req.County) != "" {
		county = strings.TrimSpace(req.County)
	}
	svc := Service{
		Name:             strings.TrimSpace(req.Name),
		Category:         req.Category,
		Description:      req.Description,
		Coordinator:      req.Coordinator,
		ContactInfo:      req.ContactInfo,
		Location:         strings.TrimSpace(req.Location),
		Schedule:         req.Schedule,
		VolunteersNeeded: req.VolunteersNeeded,
		Requirements:     req.Requirements,
		TrainingProvided: req.TrainingProvided,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		County:           county,
		CreatedBy:        caller.Email,
	}
	if err := s.repo().Create(ctx, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *VolunteerService) Update(ctx context.Context, id uint, patch *Service, columns []string, caller *auth.Identity) (*Service, error) {
	svc, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, svc.CreatedBy); err != nil {
		return nil, err
	}
	return s.repo().Patch(ctx, id, patch, columns)
}

// Delete removes the service and the applications made to it.
func (s *VolunteerService) Delete(ctx context.Context, id uint, caller *auth.Identity) (*Service, error) {
	svc, err := s.repo().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Check(caller, svc.CreatedBy); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).Delete(&Application{}).Error; err != nil {
			return err
		}
		return entity.NewRepository[Service](tx).Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Apply records an application with status pending. A second application from the same
// email to the same service fails with ErrAlreadyApplied.
func (s *VolunteerService) Apply(ctx context.Context, serviceID uint, req ApplyRequest, caller *auth.Identity) (*Application, error) {
	svc, err := s.repo().Get(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.ApplicantEmail))
	existing, err := s.findApplication(s.DB.WithContext(ctx), serviceID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	app := Application{
		ServiceID:          svc.ID,
		ServiceName:        svc.Name,
		ApplicantName:      strings.TrimSpace(req.ApplicantName),
		ApplicantEmail:     email,
		Skills:             req.Skills,
		Availability:       req.Availability,
		Motivation:         req.Motivation,
		PreviousExperience: req.PreviousExperience,
		References:         req.References,
		County:             svc.County,
		Status:             StatusPending,
	}
	if caller != nil {
		app.CreatedBy = caller.Email
	}

	if err := entity.NewRepository[Application](s.DB).Create(ctx, &app); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return &app, nil
}

func (s *VolunteerService) Recent(ctx context.Context, county string, limit int) ([]Service, error) {
	return s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"county": county},
		Sort:   "-created_at",
		Limit:  limit,
	})
}

func (s *VolunteerService) findApplication(db *gorm.DB, serviceID uint, email string) (*Application, error) {
	var rows []Application
	if err := db.Where("service_id = ? AND applicant_email = ?", serviceID, strings.ToLower(email)).
		Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
