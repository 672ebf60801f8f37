package militia

import (
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, militiaService *MilitiaService, logService *logs.LogService, jwtSecret string) {
	militiaController := &MilitiaController{Service: militiaService, LogService: logService}

	group := r.Group("/api/militia")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("/applications", militiaController.Apply)
		group.GET("/applications", militiaController.Mine)
	}
}
