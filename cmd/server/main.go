package main

import (
	"context"
	"log"

	"county-portal-api/config"
	"county-portal-api/internal/admin"
	"county-portal-api/internal/auth"
	"county-portal-api/internal/bootstrap"
	"county-portal-api/internal/county"
	"county-portal-api/internal/dashboard"
	"county-portal-api/internal/event"
	"county-portal-api/internal/geocode"
	"county-portal-api/internal/government"
	"county-portal-api/internal/heritage"
	"county-portal-api/internal/logging"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/lookup"
	"county-portal-api/internal/metrics"
	"county-portal-api/internal/militia"
	"county-portal-api/internal/role"
	"county-portal-api/internal/selection"
	"county-portal-api/internal/upload"
	"county-portal-api/internal/volunteer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := bootstrap.OpenDB(cfg)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("database", zap.Error(err))
	}

	enricher, err := bootstrap.NewEnricher(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("geocoder", zap.Error(err))
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(logger), metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
	}))
	r.Use(selection.Middleware())
	r.GET("/metrics", metrics.Handler())

	logService := &logs.LogService{DB: db}
	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, logService, cfg.JWTSecret)

	roleService := &role.RoleService{DB: db}
	role.RegisterRoutes(r, roleService, logService, cfg.JWTSecret)

	lookup.RegisterRoutes(r, lookup.NewLookupService(db))

	countyService := &county.CountyService{DB: db}
	county.RegisterRoutes(r, countyService, logService, cfg.JWTSecret)
	selection.RegisterRoutes(r, countyService)

	eventService := &event.EventService{DB: db}
	event.RegisterRoutes(r, eventService, logService, cfg.JWTSecret)

	volunteerService := &volunteer.VolunteerService{DB: db, Geocode: enricher}
	volunteer.RegisterRoutes(r, volunteerService, logService, cfg.JWTSecret)

	heritageService := &heritage.HeritageService{DB: db}
	heritage.RegisterRoutes(r, heritageService, logService, cfg.JWTSecret)

	governmentService := &government.GovernmentService{DB: db, Users: authService, Events: eventService}
	government.RegisterRoutes(r, governmentService, logService, cfg.JWTSecret)

	militiaService := &militia.MilitiaService{DB: db}
	militia.RegisterRoutes(r, militiaService, logService, cfg.JWTSecret)

	dashboard.RegisterRoutes(r, &dashboard.Dashboard{
		Events:   eventService,
		Services: volunteerService,
		Heritage: heritageService,
	})

	uploadService := &upload.UploadService{Bucket: cfg.GCSBucket, CredentialsFile: cfg.GCSCredentialsFile}
	upload.RegisterRoutes(r, uploadService, logService, cfg.JWTSecret)

	geocode.RegisterRoutes(r, enricher, cfg.JWTSecret)

	adminService := &admin.AdminService{
		Enricher: enricher,
		Stores:   bootstrap.GeocodeStores(db),
		Councils: governmentService,
	}
	admin.RegisterRoutes(r, adminService, logService, cfg.JWTSecret)

	// Cloud Run expects plain HTTP on $PORT, bound to 0.0.0.0.
	logger.Info("starting server", zap.String("addr", "0.0.0.0:"+cfg.Port))
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
