package heritage

import (
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, heritageService *HeritageService, logService *logs.LogService, jwtSecret string) {
	heritageController := &HeritageController{Service: heritageService, LogService: logService}

	public := r.Group("/api/heritage")
	public.Use(middlewares.OptionalAuth(jwtSecret))
	{
		public.GET("", heritageController.List)
		public.GET("/:id", heritageController.Get)
	}

	group := r.Group("/api/heritage")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("", heritageController.Create)
		group.PUT("/:id", heritageController.Update)
		group.DELETE("/:id", heritageController.Delete)
	}
}
