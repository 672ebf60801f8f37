package county

import (
	"county-portal-api/internal/auth"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, countyService *CountyService, logService *logs.LogService, jwtSecret string) {
	countyController := &CountyController{Service: countyService, LogService: logService}

	group := r.Group("/api/counties")
	{
		group.GET("", countyController.List)
		group.GET("/:id", countyController.Get)
	}

	admin := r.Group("/api/counties")
	admin.Use(middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole(auth.RoleAdmin))
	{
		admin.POST("", countyController.Create)
		admin.PUT("/:id", countyController.Update)
		admin.DELETE("/:id", countyController.Delete)
	}
}
