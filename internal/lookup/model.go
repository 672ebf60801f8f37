package lookup

import (
	"county-portal-api/internal/event"
	"county-portal-api/internal/government"
	"county-portal-api/internal/heritage"
	"county-portal-api/internal/volunteer"
)

// Vocabularies holds the fixed option lists the portal forms offer.
type Vocabularies struct {
	EventCategories     []string `json:"event_categories"`
	VolunteerCategories []string `json:"volunteer_categories"`
	HeritageCategories  []string `json:"heritage_categories"`
	DistrictTypes       []string `json:"district_types"`
	ParishTypes         []string `json:"parish_types"`
}

func vocabularies() Vocabularies {
	return Vocabularies{
		EventCategories:     clone(event.Categories),
		VolunteerCategories: clone(volunteer.Categories),
		HeritageCategories:  clone(heritage.Categories),
		DistrictTypes:       clone(government.DistrictTypes),
		ParishTypes:         clone(government.ParishTypes),
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
