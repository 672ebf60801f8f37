package logs

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"county-portal-api/internal/util"

	"gorm.io/gorm"
)

const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(log SystemLog, metadata interface{}) error {
	var metaStr *string

	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			str := string(b)
			metaStr = &str
		}
	}

	newLog := SystemLog{
		Level:     log.Level,
		Service:   log.Service,
		UserID:    log.UserID,
		Action:    log.Action,
		Message:   log.Message,
		County:    log.County,
		Metadata:  metaStr,
		CreatedAt: time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]LogRow, LogAggregates, int64, int, error) {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	dr, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	base := ls.DB.
		Table("logs").
		Select("logs.*, u.full_name as full_name").
		Joins("LEFT JOIN users u ON logs.user_id = u.id")

	// last 30 days unless a range was asked for
	if !dr.HasStart() && !dr.HasEnd() {
		base = base.Where("logs.created_at >= ?", time.Now().AddDate(0, 0, -30))
	}
	if dr.HasStart() {
		base = base.Where("logs.created_at >= ?", dr.Start)
	}
	if dr.HasEnd() {
		base = base.Where("logs.created_at < ?", dr.End)
	}

	if input.UserID != nil {
		base = base.Where("logs.user_id = ?", *input.UserID)
	}
	if v := trimmed(input.Level); v != "" {
		base = base.Where("logs.level = ?", v)
	}
	if v := trimmed(input.Service); v != "" {
		base = base.Where("logs.service = ?", v)
	}
	if v := trimmed(input.Action); v != "" {
		base = base.Where("logs.action = ?", v)
	}
	if v := trimmed(input.County); v != "" {
		base = base.Where("logs.county = ?", v)
	}

	if v := trimmed(input.Search); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		base = base.Where(
			`LOWER(logs.level) LIKE ?
			 OR LOWER(logs.service) LIKE ?
			 OR LOWER(logs.action) LIKE ?
			 OR LOWER(logs.message) LIKE ?
			 OR LOWER(COALESCE(logs.county,'')) LIKE ?
			 OR LOWER(COALESCE(u.full_name,'')) LIKE ?`,
			like, like, like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	rows := []LogRow{}
	if err := base.
		Session(&gorm.Session{}).
		Order("logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	aggs, err := ls.aggregates(base)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	return rows, aggs, total, totalPages, nil
}

func (ls *LogService) aggregates(base *gorm.DB) (LogAggregates, error) {
	sub := base.Session(&gorm.Session{}).Select("logs.service, logs.county, logs.action")
	derived := ls.DB.Table("(?) as x", sub)

	group := func(expr string) ([]AggItem, error) {
		out := []AggItem{}
		err := derived.Session(&gorm.Session{}).
			Select(expr + " AS label, COUNT(*) AS count").
			Group("label").
			Order("count DESC").
			Limit(12).
			Scan(&out).Error
		return out, err
	}

	var (
		aggs LogAggregates
		err  error
	)
	if aggs.ByService, err = group("x.service"); err != nil {
		return LogAggregates{}, err
	}
	if aggs.ByCounty, err = group("COALESCE(NULLIF(TRIM(x.county), ''), 'No county')"); err != nil {
		return LogAggregates{}, err
	}
	if aggs.ByAction, err = group("x.action"); err != nil {
		return LogAggregates{}, err
	}
	return aggs, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
