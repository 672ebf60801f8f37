package militia

import (
	"context"
	"strings"

	"county-portal-api/internal/auth"
	"county-portal-api/internal/entity"

	"gorm.io/gorm"
)

type MilitiaService struct {
	DB *gorm.DB
}

func (s *MilitiaService) repo() *entity.Repository[Application] {
	return entity.NewRepository[Application](s.DB)
}

func (s *MilitiaService) Apply(ctx context.Context, req ApplyRequest, caller *auth.Identity, county string) (*Application, error) {
	if strings.TrimSpace(req.County) != "" {
		county = strings.TrimSpace(req.County)
	}
	app := Application{
		ApplicantName:  strings.TrimSpace(req.ApplicantName),
		ApplicantEmail: strings.ToLower(strings.TrimSpace(req.ApplicantEmail)),
		Phone:          req.Phone,
		Experience:     req.Experience,
		Motivation:     req.Motivation,
		Availability:   req.Availability,
		County:         county,
		Status:         StatusPending,
		CreatedBy:      caller.Email,
	}
	if err := s.repo().Create(ctx, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Mine lists the applications caller has submitted, newest first.
func (s *MilitiaService) Mine(ctx context.Context, caller *auth.Identity) ([]Application, error) {
	return s.repo().Filter(ctx, entity.Query{
		Fields: map[string]any{"created_by": caller.Email},
		Sort:   "-created_at",
	})
}
