package admin

import (
	"county-portal-api/internal/auth"
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, adminService *AdminService, logService *logs.LogService, jwtSecret string) {
	adminController := &AdminController{AdminService: adminService, LogService: logService}
	logController := &logs.LogController{LogService: logService}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middlewares.AuthMiddleware(jwtSecret), middlewares.RequireRole(auth.RoleAdmin))
	{
		adminGroup.POST("/backfill", adminController.Backfill)
		adminGroup.GET("/export", adminController.ExportCouncils)
		adminGroup.POST("/logs", logController.GetLogs)
	}
}
