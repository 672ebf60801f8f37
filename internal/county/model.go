package county

import (
	"time"

	"gorm.io/datatypes"
)

type County struct {
	ID             uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string                      `gorm:"size:150;uniqueIndex;not null" json:"name" yaml:"name"`
	Country        string                      `gorm:"size:50;index" json:"country" yaml:"country"`
	Population     int                         `json:"population" yaml:"population"`
	CoatOfArms     string                      `gorm:"column:coat_of_arms" json:"coat_of_arms" yaml:"coat_of_arms"`
	LordLieutenant string                      `gorm:"column:lord_lieutenant" json:"lord_lieutenant" yaml:"lord_lieutenant"`
	Sheriff        string                      `json:"sheriff" yaml:"sheriff"`
	Description    string                      `gorm:"type:text" json:"description" yaml:"description"`
	Traditions     datatypes.JSONSlice[string] `gorm:"type:json" json:"traditions" yaml:"traditions"`
	CreatedAt      time.Time                   `json:"created_at" yaml:"-"`
	UpdatedAt      time.Time                   `json:"updated_at" yaml:"-"`
}

func (County) TableName() string {
	return "counties"
}

var Countries = []string{
	"England",
	"Wales",
	"Scotland",
	"Northern Ireland",
	"Crown Dependency",
	"Overseas Territory",
}

var updatableColumns = map[string]bool{
	"name":            true,
	"country":         true,
	"population":      true,
	"coat_of_arms":    true,
	"lord_lieutenant": true,
	"sheriff":         true,
	"description":     true,
	"traditions":      true,
}

type CreateCountyRequest struct {
	Name           string   `json:"name" binding:"required"`
	Country        string   `json:"country" binding:"required"`
	Population     int      `json:"population"`
	CoatOfArms     string   `json:"coat_of_arms"`
	LordLieutenant string   `json:"lord_lieutenant"`
	Sheriff        string   `json:"sheriff"`
	Description    string   `json:"description"`
	Traditions     []string `json:"traditions"`
}
