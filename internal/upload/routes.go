package upload

import (
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, uploadService *UploadService, logService *logs.LogService, jwtSecret string) {
	uploadController := &UploadController{Service: uploadService, LogService: logService}

	group := r.Group("/api/uploads")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("", uploadController.Upload)
	}
}
