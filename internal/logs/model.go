package logs

import "time"

type SystemLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string    `gorm:"size:20;not null" json:"level"`
	Service   string    `gorm:"size:100;not null" json:"service"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	County    string    `gorm:"size:100;index" json:"county"`
	Metadata  *string   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type LogFilterInput struct {
	UserID  *uint   `json:"user_id"`
	Level   *string `json:"level"`
	Service *string `json:"service"`
	Action  *string `json:"action"`
	County  *string `json:"county"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD" or RFC3339
	EndDate   *string `json:"end_date"`

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LogAggregates struct {
	ByService []AggItem `json:"by_service"`
	ByCounty  []AggItem `json:"by_county"`
	ByAction  []AggItem `json:"by_action"`
}

type LogRow struct {
	SystemLog
	FullName string `json:"full_name" gorm:"column:full_name"`
}

func (SystemLog) TableName() string {
	return "logs"
}

// AuditLogger is the write side of LogService that feature controllers depend on.
type AuditLogger interface {
	Log(entry SystemLog, payload any) error
}

var _ AuditLogger = (*LogService)(nil)
