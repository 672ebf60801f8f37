package event

import (
	"context"

	"county-portal-api/internal/entity"
	"county-portal-api/internal/geocode"

	"gorm.io/gorm"
)

// GeocodeStore exposes events to the geocode enricher.
type GeocodeStore struct {
	DB *gorm.DB
}

func (GeocodeStore) Noun() string { return "events" }

func (s GeocodeStore) MissingCoordinates(ctx context.Context) ([]geocode.Target, error) {
	var events []Event
	if err := s.DB.WithContext(ctx).
		Where("latitude IS NULL OR longitude IS NULL").
		Order("id asc").
		Find(&events).Error; err != nil {
		return nil, err
	}

	targets := make([]geocode.Target, 0, len(events))
	for _, e := range events {
		targets = append(targets, geocode.Target{
			ID:        e.ID,
			Title:     e.Title,
			Location:  e.Location,
			County:    e.County,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
		})
	}
	return targets, nil
}

func (s GeocodeStore) SetCoordinates(ctx context.Context, id uint, c geocode.Coordinates) error {
	_, err := entity.NewRepository[Event](s.DB).Update(ctx, id, map[string]any{
		"latitude":  c.Latitude,
		"longitude": c.Longitude,
	})
	return err
}

var _ geocode.Store = GeocodeStore{}
