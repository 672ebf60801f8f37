package lookup

import (
	"context"

	"county-portal-api/internal/county"

	"gorm.io/gorm"
)

type LookupServiceAPI interface {
	GetCountries(ctx context.Context) ([]string, error)
	GetVocabularies() Vocabularies
}

type LookupService struct {
	DB *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{DB: db}
}

// GetCountries lists the distinct countries that have at least one county.
func (ls *LookupService) GetCountries(ctx context.Context) ([]string, error) {
	countries := []string{}
	result := ls.DB.WithContext(ctx).
		Model(&county.County{}).
		Distinct("country").
		Where("country <> ''").
		Order("country ASC").
		Pluck("country", &countries)
	if result.Error != nil {
		return nil, result.Error
	}
	return countries, nil
}

func (ls *LookupService) GetVocabularies() Vocabularies {
	return vocabularies()
}
