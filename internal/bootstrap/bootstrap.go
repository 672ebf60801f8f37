package bootstrap

import (
	"context"
	"fmt"

	"county-portal-api/config"
	"county-portal-api/internal/admin"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/county"
	"county-portal-api/internal/event"
	"county-portal-api/internal/geocode"
	"county-portal-api/internal/government"
	"county-portal-api/internal/heritage"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/militia"
	"county-portal-api/internal/volunteer"

	"go.uber.org/zap"
	"google.golang.org/genai"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table the portal owns, in migration order.
var Models = []any{
	&auth.User{},
	&logs.SystemLog{},
	&county.County{},
	&event.Event{},
	&event.EventAttendance{},
	&heritage.HeritageRecord{},
	&volunteer.Service{},
	&volunteer.Application{},
	&government.CountyCouncil{},
	&government.DistrictCouncil{},
	&government.ParishCouncil{},
	&government.CommunityApplication{},
	&militia.Application{},
}

func OpenDB(cfg config.Config) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewGenAIClient uses the Gemini API when a key is configured and Vertex AI with
// application default credentials otherwise.
func NewGenAIClient(ctx context.Context, cfg config.Config) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  cfg.GCPProject,
		Location: cfg.GCPLocation,
	}
	if cfg.GeminiKey != "" {
		cc = &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  cfg.GeminiKey,
		}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client, nil
}

func NewEnricher(ctx context.Context, cfg config.Config, logger *zap.Logger) (*geocode.Enricher, error) {
	client, err := NewGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &geocode.Enricher{
		Geocoder: &geocode.GeminiGeocoder{Client: client, Model: cfg.GeocodeModel},
		Timeout:  cfg.GeocodeTimeout,
		Logger:   logger,
	}, nil
}

// GeocodeStores maps each backfill kind to the records it enriches.
func GeocodeStores(db *gorm.DB) map[string]geocode.Store {
	return map[string]geocode.Store{
		admin.KindEvents:            event.GeocodeStore{DB: db},
		admin.KindVolunteerServices: volunteer.GeocodeStore{DB: db},
	}
}
