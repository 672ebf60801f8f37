package volunteer

import (
	"context"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/geocode"

	"gorm.io/gorm"
)

// GeocodeStore exposes volunteer services to the geocode enricher.
type GeocodeStore struct {
	DB *gorm.DB
}

func (GeocodeStore) Noun() string { return "volunteer services" }

func (s GeocodeStore) MissingCoordinates(ctx context.Context) ([]geocode.Target, error) {
	var services []Service
	if err := s.DB.WithContext(ctx).
		Where("latitude IS NULL OR longitude IS NULL").
		Order("id asc").
		Find(&services).Error; err != nil {
		return nil, err
	}

	targets := make([]geocode.Target, 0, len(services))
	for _, v := range services {
		targets = append(targets, geocode.Target{
			ID:        v.ID,
			Title:     v.Name,
			Location:  v.Location,
			County:    v.County,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		})
	}
	return targets, nil
}

func (s GeocodeStore) SetCoordinates(ctx context.Context, id uint, c geocode.Coordinates) error {
	_, err := entity.NewRepository[Service](s.DB).Update(ctx, id, map[string]any{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
	})
	return err
}

var _ geocode.Store = GeocodeStore{}
