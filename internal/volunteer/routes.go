package volunteer

import (
	"county-portal-api/internal/logs"
	"county-portal-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, volunteerService *VolunteerService, logService *logs.LogService, jwtSecret string) {
	volunteerController := &VolunteerController{Service: volunteerService, LogService: logService}

	public := r.Group("/api/volunteer")
	public.Use(middlewares.OptionalAuth(jwtSecret))
	{
		public.GET("", volunteerController.List)
		public.GET("/:id", volunteerController.Get)
	}

	group := r.Group("/api/volunteer")
	group.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		group.POST("", volunteerController.Create)
		group.PUT("/:id", volunteerController.Update)
		group.DELETE("/:id", volunteerController.Delete)
		group.POST("/:id/applications", volunteerController.Apply)
	}
}
