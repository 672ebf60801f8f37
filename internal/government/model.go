package government

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Kind string

const (
	KindCounty   Kind = "county"
	KindDistrict Kind = "district"
	KindParish   Kind = "parish"
)

var ErrUnknownKind = errors.New("unknown council kind")

var DistrictTypes = []string{"district", "borough", "city", "metropolitan_borough", "unitary_authority"}

var ParishTypes = []string{"civil_parish", "town_council", "community_council", "neighbourhood_council"}

// CouncilBase holds the columns every tier of council shares.
type CouncilBase struct {
	ID                  uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string                      `gorm:"size:255;not null" json:"name"`
	Headquarters        string                      `json:"headquarters"`
	PopulationServed    int                         `gorm:"column:population_served" json:"population_served"`
	Website             string                      `json:"website"`
	Established         string                      `json:"established"`
	MeetingSchedule     string                      `gorm:"column:meeting_schedule" json:"meeting_schedule"`
	KeyServices         datatypes.JSONSlice[string] `gorm:"column:key_services;type:json" json:"key_services"`
	KeyResponsibilities datatypes.JSONSlice[string] `gorm:"column:key_responsibilities;type:json" json:"key_responsibilities"`
	LocalServices       datatypes.JSONSlice[string] `gorm:"column:local_services;type:json" json:"local_services"`
	County              string                      `gorm:"size:150;index" json:"county"`
	CreatedBy           string                      `gorm:"column:created_by" json:"created_by"`
	CreatedAt           time.Time                   `json:"created_date"`
	UpdatedAt           time.Time                   `json:"updated_date"`
}

func (b *CouncilBase) Base() *CouncilBase { return b }

// Council is implemented by pointers to the three council models.
type Council interface {
	Base() *CouncilBase
}

type CountyCouncil struct {
	CouncilBase
	CouncilLeader  string `gorm:"column:council_leader" json:"council_leader"`
	ChiefExecutive string `gorm:"column:chief_executive" json:"chief_executive"`
	Mayor          string `json:"mayor"`
	CouncilLogo    string `gorm:"column:council_logo" json:"council_logo"`
}

func (CountyCouncil) TableName() string {
	return "county_councils"
}

type DistrictCouncil struct {
	CouncilBase
	CouncilLeader   string `gorm:"column:council_leader" json:"council_leader"`
	ChiefExecutive  string `gorm:"column:chief_executive" json:"chief_executive"`
	Mayor           string `json:"mayor"`
	DistrictType    string `gorm:"column:district_type;size:30" json:"district_type" binding:"omitempty,oneof=district borough city metropolitan_borough unitary_authority"`
	GeographicArea  string `gorm:"column:geographic_area" json:"geographic_area"`
	CountyCouncilID *uint  `gorm:"column:county_council_id;index" json:"county_council_id"`
	DistrictLogo    string `gorm:"column:district_logo" json:"district_logo"`
}

func (DistrictCouncil) TableName() string {
	return "district_councils"
}

type ParishCouncil struct {
	CouncilBase
	ParishType        string          `gorm:"column:parish_type;size:30" json:"parish_type" binding:"omitempty,oneof=civil_parish town_council community_council neighbourhood_council"`
	WardArea          string          `gorm:"column:ward_area" json:"ward_area"`
	Chairman          string          `json:"chairman"`
	Clerk             string          `json:"clerk"`
	Precept           decimal.Decimal `gorm:"type:decimal(14,2)" json:"precept"`
	DistrictCouncilID *uint           `gorm:"column:district_council_id;index" json:"district_council_id"`
	ParishLogo        string          `gorm:"column:parish_logo" json:"parish_logo"`
}

func (ParishCouncil) TableName() string {
	return "parish_councils"
}

// NewCouncil returns an empty record of kind and the columns a patch may touch.
func NewCouncil(kind Kind) (Council, map[string]bool, error) {
	switch kind {
	case KindCounty:
		return &CountyCouncil{}, withBase("council_leader", "chief_executive", "mayor", "council_logo"), nil
	case KindDistrict:
		return &DistrictCouncil{}, withBase("council_leader", "chief_executive", "mayor", "district_type",
			"geographic_area", "county_council_id", "district_logo"), nil
	case KindParish:
		return &ParishCouncil{}, withBase("parish_type", "ward_area", "chairman", "clerk", "precept",
			"district_council_id", "parish_logo"), nil
	default:
		return nil, nil, ErrUnknownKind
	}
}

func withBase(cols ...string) map[string]bool {
	m := map[string]bool{
		"name":                 true,
		"headquarters":         true,
		"population_served":    true,
		"website":              true,
		"established":          true,
		"meeting_schedule":     true,
		"key_services":         true,
		"key_responsibilities": true,
		"local_services":       true,
		"county":               true,
	}
	for _, c := range cols {
		m[c] = true
	}
	return m
}

const (
	LevelCountyCouncil   = "county_council"
	LevelDistrictCouncil = "district_council"
	LevelParishCouncil   = "parish_council"
)

const StatusPending = "pending"

// CommunityApplication is an offer to serve on a council.
type CommunityApplication struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicantName     string    `gorm:"column:applicant_name" json:"applicant_name"`
	ApplicantEmail    string    `gorm:"column:applicant_email;index" json:"applicant_email"`
	OrganisationLevel string    `gorm:"column:organisation_level;size:30" json:"organisation_level"`
	PreferredArea     string    `gorm:"column:preferred_area" json:"preferred_area"`
	SkillsExperience  string    `gorm:"column:skills_experience;type:text" json:"skills_experience"`
	Motivation        string    `gorm:"type:text" json:"motivation"`
	Availability      string    `json:"availability"`
	EmergencyContact  string    `gorm:"column:emergency_contact" json:"emergency_contact"`
	Notes             string    `gorm:"type:text" json:"notes"`
	County            string    `gorm:"size:150;index" json:"county"`
	Status            string    `gorm:"size:20;default:pending" json:"status"`
	CreatedBy         string    `gorm:"column:created_by" json:"created_by"`
	CreatedAt         time.Time `json:"created_date"`
}

func (CommunityApplication) TableName() string {
	return "community_applications"
}

type CommunityApplicationRequest struct {
	ApplicantName     string `json:"applicant_name" binding:"required"`
	ApplicantEmail    string `json:"applicant_email" binding:"required,email"`
	OrganisationLevel string `json:"organisation_level" binding:"required,oneof=county_council district_council parish_council"`
	PreferredArea     string `json:"preferred_area"`
	SkillsExperience  string `json:"skills_experience"`
	Motivation        string `json:"motivation" binding:"required"`
	Availability      string `json:"availability"`
	EmergencyContact  string `json:"emergency_contact"`
	Notes             string `json:"notes"`
	County            string `json:"county"`
}
