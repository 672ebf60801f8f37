package heritage

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CategoryTradition        = "tradition"
	CategoryMusic            = "music"
	CategoryFolklore         = "folklore"
	CategoryLocations        = "locations"
	CategoryNotableFigures   = "notable_figures"
	CategoryHistoricalEvents = "historical_events"
	CategoryGenealogy        = "genealogy"

	// categoryArchitecture is accepted from older records and shown as locations.
	categoryArchitecture = "architecture"
)

var Categories = []string{
	CategoryTradition,
	CategoryMusic,
	CategoryFolklore,
	CategoryLocations,
	CategoryNotableFigures,
	CategoryHistoricalEvents,
	CategoryGenealogy,
}

const StatusPending = "pending"

// MediaItem is one uploaded file attached to a record.
type MediaItem struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type HeritageRecord struct {
	ID               uint                           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string                         `gorm:"size:255;not null" json:"title"`
	Category         string                         `gorm:"size:50;index" json:"category"`
	Description      string                         `gorm:"type:text" json:"description"`
	TimePeriod       string                         `gorm:"column:time_period" json:"time_period"`
	Sources          datatypes.JSONSlice[string]    `gorm:"type:json" json:"sources"`
	Contributor      string                         `json:"contributor"`
	ContributorEmail string                         `gorm:"column:contributor_email" json:"contributor_email"`
	Media            datatypes.JSONSlice[MediaItem] `gorm:"type:json" json:"media"`
	Verified         bool                           `gorm:"default:false" json:"verified"`
	Status           string                         `gorm:"size:20;default:pending" json:"status"`
	County           string                         `gorm:"size:150;index" json:"county"`
	CreatedBy        string                         `gorm:"column:created_by;index" json:"created_by"`
	CreatedAt        time.Time                      `json:"created_date"`
	UpdatedAt        time.Time                      `json:"updated_date"`
}

func (HeritageRecord) TableName() string {
	return "heritage_records"
}

func (h HeritageRecord) Creator() string {
	return h.CreatedBy
}

// DisplayCategory folds legacy categories into the ones the portal lists.
func DisplayCategory(category string) string {
	if category == categoryArchitecture {
		return CategoryLocations
	}
	return category
}

type RecordDetail struct {
	HeritageRecord
	CanModify bool `json:"can_modify"`
}

// verified and status are set on creation only.
var updatableColumns = map[string]bool{
	"title":             true,
	"category":          true,
	"description":       true,
	"time_period":       true,
	"sources":           true,
	"contributor":       true,
	"contributor_email": true,
	"media":             true,
	"county":            true,
}

type CreateRecordRequest struct {
	Title            string      `json:"title" binding:"required"`
	Category         string      `json:"category" binding:"required,oneof=tradition music folklore locations notable_figures historical_events genealogy architecture"`
	Description      string      `json:"description" binding:"required"`
	TimePeriod       string      `json:"time_period"`
	Sources          []string    `json:"sources"`
	Contributor      string      `json:"contributor"`
	ContributorEmail string      `json:"contributor_email" binding:"omitempty,email"`
	Media            []MediaItem `json:"media" binding:"dive"`
	County           string      `json:"county"`
}

type ListFilter struct {
	County   string
	Category string
	Search   string
}
