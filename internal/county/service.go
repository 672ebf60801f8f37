package county

import (
	"context"
	"errors"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/listing"
	"county-portal-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CountyService struct {
	DB *gorm.DB
}

func (s *CountyService) repo() *entity.Repository[County] {
	return entity.NewRepository[County](s.DB)
}

// List returns counties in natural name order, narrowed by country ("all" or empty for
// every country) and a case-insensitive name search.
func (s *CountyService) List(ctx context.Context, search, country string) ([]County, error) {
	q := entity.Query{}
	if country != "" && country != listing.AllCategories {
		q.Fields = map[string]any{"country": country}
	}

	counties, err := s.repo().Filter(ctx, q)
	if err != nil {
		return nil, err
	}

	counties = listing.Filter(counties, listing.AllCategories, search,
		func(c County) string { return c.Country },
		func(c County) string { return c.Name },
	)
	util.SortNatural(counties, func(c County) string { return c.Name })
	return counties, nil
}

func (s *CountyService) Get(ctx context.Context, id uint) (*County, error) {
	return s.repo().Get(ctx, id)
}

func (s *CountyService) GetByName(ctx context.Context, name string) (*County, error) {
	found, err := s.repo().Filter(ctx, entity.Query{Fields: map[string]any{"name": name}, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, entity.ErrNotFound
	}
	return &found[0], nil
}

func (s *CountyService) Create(ctx context.Context, req CreateCountyRequest) (*County, error) {
	c := County{
		Name:           req.Name,
		Country:        req.Country,
		Population:     req.Population,
		CoatOfArms:     req.CoatOfArms,
		LordLieutenant: req.LordLieutenant,
		Sheriff:        req.Sheriff,
		Description:    req.Description,
		Traditions:     datatypes.JSONSlice[string](nonNil(req.Traditions)),
	}
	if err := s.repo().Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CountyService) Update(ctx context.Context, id uint, patch *County, columns []string) (*County, error) {
	return s.repo().Patch(ctx, id, patch, columns)
}

func (s *CountyService) Delete(ctx context.Context, id uint) error {
	return s.repo().Delete(ctx, id)
}

// Seed inserts counties that do not exist yet and refreshes the ones that do, matched by name.
func (s *CountyService) Seed(ctx context.Context, counties []County) (created, updated int, err error) {
	for _, c := range counties {
		existing, err := s.GetByName(ctx, c.Name)
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.ID = 0
			if err := s.repo().Create(ctx, &c); err != nil {
				return created, updated, err
			}
			created++
		case err != nil:
			return created, updated, err
		default:
			cols := []string{"country", "population", "coat_of_arms", "lord_lieutenant", "sheriff", "description", "traditions"}
			if _, err := s.repo().Patch(ctx, existing.ID, &c, cols); err != nil {
				return created, updated, err
			}
			updated++
		}
	}
	return created, updated, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
